package cli

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hostel-be-svc/internal/models"
	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/service"
	apperrors "hostel-be-svc/pkg/errors"
)

func newLaundryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "laundry",
		Short: "Submit and track laundry requests",
	}
	cmd.AddCommand(newLaundryListCmd(a), newLaundrySubmitCmd(a))
	return cmd
}

func newLaundryListCmd(a *app) *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List laundry requests filed under a phone number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewLaundryService(a.client, a.cache, a.notifier, a.logger)
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
			return a.print(cmd, listing, func(w io.Writer) { printLaundry(w, listing) })
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "phone number (defaults to the logged-in user's)")

	return cmd
}

func newLaundrySubmitCmd(a *app) *cobra.Command {
	var (
		form      models.LaundryForm
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Hand in clothes for laundry",
		Long: `Hand in clothes for laundry. Name, phone and room default to the
logged-in user. The date defaults to today.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewLaundryService(a.client, a.cache, a.notifier, a.logger)
			defer svc.Close()

			defaults, err := svc.Prefill(cmd.Context())
			if err != nil {
				return err
			}
			form.Name = orDefault(form.Name, defaults.Name)
			form.Phone = orDefault(form.Phone, defaults.Phone)
			form.RoomNo = orDefault(form.RoomNo, defaults.RoomNo)

			var upload *models.Upload
			if imagePath != "" {
				file, err := os.Open(imagePath)
				if err != nil {
					return apperrors.NewValidationError(fmt.Sprintf("Cannot read image: %v", err))
				}
				defer file.Close()
				upload = &models.Upload{
					Filename:    filepath.Base(imagePath),
					ContentType: mime.TypeByExtension(filepath.Ext(imagePath)),
					Body:        file,
				}
			}

			result, err := svc.Submit(cmd.Context(), form, upload)
			if err != nil {
				return err
			}
			listing := svc.State().Listing
			return a.print(cmd, result, func(w io.Writer) {
				fmt.Fprintln(w, result.Message)
				fmt.Fprintln(w)
				printLaundry(w, &listing)
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&form.GivenCloth, "given-cloth", "", "number of clothes handed in")
	flags.StringVar(&form.Name, "name", "", "full name")
	flags.StringVar(&form.Phone, "phone", "", "phone number")
	flags.StringVar(&form.RoomNo, "room", "", "room number")
	flags.StringVar(&form.Date, "date", "", "date as YYYY-MM-DD")
	flags.StringVar(&imagePath, "image", "", "photo of the clothes")

	return cmd
}

func printLaundry(w io.Writer, listing *response.LaundryListView) {
	if len(listing.Requests) == 0 {
		fmt.Fprintln(w, orDefault(listing.Message, "No requests found"))
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tROOM\tGIVEN\tTAKEN\tSTATUS\tIMAGE")
	for _, r := range listing.Requests {
		fmt.Fprintf(tw, "#%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Date, r.RoomNo, r.GivenCloth, orDefault(r.TakenCloth, "-"), r.Status.Label, orDefault(r.ClothImage, "-"))
	}
	tw.Flush()
}
