package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bonhokoo-eng/ci-generator/pkg/models"
)

var staffCmd = &cobra.Command{
	Use:   "staff",
	Short: "Manage sender-side staff contacts",
}

var staffListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staff",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tEMAIL\tPHONE")
		for _, s := range a.store.StaffList() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, s.Email, s.Phone)
		}
		return tw.Flush()
	},
}

var staffAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add or update a staff member",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		var s models.Staff
		s.Name, _ = cmd.Flags().GetString("name")
		s.Email, _ = cmd.Flags().GetString("email")
		s.Phone, _ = cmd.Flags().GetString("phone")
		if err := a.store.SaveStaff(s); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved staff %s <%s>\n", s.Name, s.Email)
		return nil
	},
}

var staffDeleteCmd = &cobra.Command{
	Use:   "delete [email]",
	Short: "Delete a staff member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		deleted, err := a.store.DeleteStaff(args[0])
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("staff %q not found", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted staff %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(staffCmd)
	staffCmd.AddCommand(staffListCmd, staffAddCmd, staffDeleteCmd)

	staffAddCmd.Flags().String("name", "", "Name")
	staffAddCmd.Flags().String("email", "", "Email (required)")
	staffAddCmd.Flags().String("phone", "", "Phone")
	_ = staffAddCmd.MarkFlagRequired("email")
}
