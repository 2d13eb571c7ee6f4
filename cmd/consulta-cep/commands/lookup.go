package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func lookupCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "lookup <cep>",
		Short: "Look up a single CEP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := appCtx.Service.Consult(cmd.Context(), args[0], "cli")
			if out.Error != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), out.Error.Message)
				return errOutcome
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Address)
			}

			a := out.Address
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(tw, "CEP:\t%s\n", a.CEP)
			fmt.Fprintf(tw, "Logradouro:\t%s\n", a.Logradouro)
			fmt.Fprintf(tw, "Complemento:\t%s\n", a.Complemento)
			fmt.Fprintf(tw, "Bairro:\t%s\n", a.Bairro)
			fmt.Fprintf(tw, "Cidade:\t%s\n", a.Localidade)
			fmt.Fprintf(tw, "Estado:\t%s\n", a.UF)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the address as JSON")
	return cmd
}
