package main

import (
	"fmt"
	"io"

	"github.com/WailSalutem-Health-Care/ward-service/internal/validation"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a value against the ward's field rules",
}

func init() {
	validateCmd.AddCommand(
		newRuleCmd("id <value>", "Check a staff id", validation.TagStaffID),
		newRuleCmd("password <value>", "Check password complexity", validation.TagStrongPassword),
		newRuleCmd("age <value>", "Check an age", validation.TagWardAge),
	)
}

func newRuleCmd(use, short, tag string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkValue(cmd.OutOrStdout(), tag, args[0])
		},
	}
}

// checkValue prints "ok" or the user-facing message, and returns the rule error.
func checkValue(out io.Writer, tag, value string) error {
	if err := validation.Var(value, tag); err != nil {
		fmt.Fprintln(out, view.Message(err))
		return err
	}
	fmt.Fprintln(out, "ok")
	return nil
}
