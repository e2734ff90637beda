package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/service"
)

func newComplaintCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complaint",
		Short: "File and track complaints",
	}
	cmd.AddCommand(newComplaintListCmd(a), newComplaintSubmitCmd(a))
	return cmd
}

func newComplaintListCmd(a *app) *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List complaints filed under a phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewComplaintService(a.client, a.cache, a.notifier, a.logger)
			defer svc.Close()

			if phone == "" {
				form, err := svc.Prefill(cmd.Context())
				if err != nil {
					return err
				}
				phone = form.Phone
			}

			listing, err := svc.List(cmd.Context(), phone)
			if err != nil {
				return err
			}
			return a.print(cmd, listing, func(w io.Writer) { printComplaints(w, listing) })
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number (defaults to the logged-in user's)")

	return cmd
}

func newComplaintSubmitCmd(a *app) *cobra.Command {
	var form models.ComplaintForm

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "File a complaint",
		Long: `File a complaint. Name, phone and room default to the logged-in user.
The date defaults to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewComplaintService(a.client, a.cache, a.notifier, a.logger)
			defer svc.Close()

			defaults, err := svc.Prefill(cmd.Context())
			if err != nil {
				return err
			}
			form.Name = orDefault(form.Name, defaults.Name)
			form.Phone = orDefault(form.Phone, defaults.Phone)
			form.RoomNo = orDefault(form.RoomNo, defaults.RoomNo)

			result, err := svc.Submit(cmd.Context(), form)
			if err != nil {
				return err
			}
			listing := svc.State().Listing
			return a.print(cmd, result, func(w io.Writer) {
				fmt.Fprintln(w, result.Message)
				fmt.Fprintln(w)
				printComplaints(w, &listing)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.Complaint, "complaint", "", "what is wrong")
	flags.StringVar(&form.Name, "name", "", "full name")
	flags.StringVar(&form.Phone, "phone", "", "phone number")
	flags.StringVar(&form.RoomNo, "room", "", "room number")
	flags.StringVar(&form.Date, "date", "", "date as YYYY-MM-DD")

	return cmd
}

func printComplaints(w io.Writer, listing *response.ComplaintListView) {
	if len(listing.Complaints) == 0 {
		fmt.Fprintln(w, orDefault(listing.Message, "No complaints found"))
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tROOM\tSTATUS\tCOMPLAINT")
	for _, c := range listing.Complaints {
		fmt.Fprintf(tw, "#%s\t%s\t%s\t%s\t%s\n", c.ID, c.Date, c.RoomNo, c.Status.Label, c.Complaint)
	}
	tw.Flush()
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
