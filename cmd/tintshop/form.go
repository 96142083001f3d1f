package main

import (
	"github.com/spf13/cobra"

	"tintshop/internal/crud"
)

// fullForm collects every registered field flag, whether set or not. Used
// by add commands: untouched flags submit as empty strings, so required
// fields validate and optional fields default.
func fullForm(fields map[string]*string) crud.Form {
	form := crud.Form{}
	for name, value := range fields {
		form[name] = *value
	}
	return form
}

// overlayChanged writes only the flags the user actually set onto form.
// Used by edit commands on top of a form prefilled from the existing
// record, so unmentioned fields keep their current values. Field names
// and flag names coincide.
func overlayChanged(cmd *cobra.Command, fields map[string]*string, form crud.Form) crud.Form {
	for name, value := range fields {
		if cmd.Flags().Changed(name) {
			form[name] = *value
		}
	}
	return form
}
