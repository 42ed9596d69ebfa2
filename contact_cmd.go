package main

import (
	"fmt"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/milk9111/folio/contact"
	"github.com/spf13/cobra"
)

var contactDelay time.Duration

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Fill in and send the contact form interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		form, err := promptForm()
		if err != nil {
			return err
		}

		confirm := promptui.Select{
			Label: "Send this message?",
			Items: []string{"Send message", "Cancel"},
		}
		idx, _, err := confirm.Run()
		if err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if idx != 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Sending...")
		sub := contact.NewSubmitter()
		sub.Delay = contactDelay
		receipt, err := sub.Submit(cmd.Context(), form)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (receipt %s)\n", receipt.Message, receipt.ID)
		return nil
	},
}

func init() {
	contactCmd.Flags().DurationVar(&contactDelay, "delay", contact.SubmitDelay, "simulated send time")
	rootCmd.AddCommand(contactCmd)
}

// promptForm asks for each field in turn, validating as the user types.
func promptForm() (contact.Form, error) {
	var form contact.Form
	fields := []struct {
		name  string
		label string
		dst   *string
	}{
		{"name", "Your name", &form.Name},
		{"email", "Email address", &form.Email},
		{"subject", "Subject", &form.Subject},
		{"message", "Message", &form.Message},
	}

	for _, f := range fields {
		name := f.name
		p := promptui.Prompt{
			Label: f.label,
			Validate: func(s string) error {
				return contact.ValidateField(name, s)
			},
		}
		v, err := p.Run()
		if err != nil {
			return contact.Form{}, fmt.Errorf("%s: %w", name, err)
		}
		*f.dst = v
	}
	return form, nil
}
