// Command tintshop manages the records of a small tinting and detailing
// shop: customers, appointments, sales, business settings, and JSON
// backups, all against a local embedded database.
package main

func main() {
	Execute()
}
