package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hostel-be-svc/internal/models/response"
	"hostel-be-svc/internal/service"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show room, rent, today's menu and notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewDashboardService(a.client, a.cache, a.notifier, a.reconciler, a.opts.currency, a.logger)
			defer svc.Close()

			view, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, view, func(w io.Writer) { printDashboard(w, view) })
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the student profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewProfileService(a.cache, a.notifier, a.reconciler, a.opts.baseURL, a.logger)
			defer svc.Close()

			view, err := svc.Load(cmd.Context(), nil)
			if err != nil {
				return err
			}
			return a.print(cmd, view, func(w io.Writer) { printProfile(w, view) })
		},
	}
}

func newRoomCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "room",
		Short: "Show the assigned room and booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewRoomDetailsService(a.cache, a.reconciler, a.opts.baseURL, a.logger)

			view, err := svc.Load(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(cmd, view, func(w io.Writer) { printRoom(w, view) })
		},
	}
}

func newMenuCmd(a *app) *cobra.Command {
	var (
		search  string
		entries int
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the weekly food menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewFoodMenuService(a.client, a.logger)

			page, err := svc.Page(cmd.Context(), search, entries)
			if err != nil {
				return err
			}
			return a.print(cmd, page, func(w io.Writer) { printMenu(w, page) })
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive filter on every column")
	cmd.Flags().IntVar(&entries, "entries", service.DefaultMenuPageSize, "rows to show")

	return cmd
}

func printDashboard(w io.Writer, view *response.DashboardView) {
	if !view.LoggedIn {
		fmt.Fprintln(w, "No user logged in.")
		return
	}

	fmt.Fprintf(w, "Welcome, %s\n\n", view.Name)

	room := view.RoomNumber
	if view.RoomType != "" {
		room = fmt.Sprintf("%s (%s)", room, view.RoomType)
	}
	tw := newTable(w)
	row(tw, "Room", room)
	row(tw, "Rent due", view.RentDue)
	row(tw, "Due date", view.DueDate)
	row(tw, "Payment status", view.PaymentStatus.Label)
	tw.Flush()

	fmt.Fprintf(w, "\nToday's menu (%s)\n", view.Weekday)
	tw = newTable(w)
	for _, slot := range view.TodayMenu {
		items := slot.Items
		if items == "" {
			items = "-"
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", slot.Meal, slot.Window, items)
	}
	tw.Flush()

	if len(view.Notifications) > 0 {
		fmt.Fprintln(w, "\nNotifications")
		for _, n := range view.Notifications {
			fmt.Fprintf(w, "  - %s\n", n.Message)
		}
	}

	for _, source := range view.Sources {
		if !source.OK && !source.Skipped {
			fmt.Fprintf(w, "\nwarning: %s: %s", source.Source, source.Error)
		}
	}
	fmt.Fprintln(w)
}

func printProfile(w io.Writer, view *response.ProfileView) {
	if view.Profile == nil {
		fmt.Fprintln(w, view.Message)
		return
	}

	p := view.Profile
	tw := newTable(w)
	row(tw, "Name", p.Name)
	row(tw, "Email", p.Email)
	row(tw, "Phone", p.Phone)
	row(tw, "Date of birth", p.DateOfBirth)
	row(tw, "Blood group", p.BloodGroup)
	row(tw, "Height", p.Height)
	row(tw, "Weight", p.Weight)
	row(tw, "Marital status", p.MaritalStatus)
	row(tw, "Father", p.FatherName)
	row(tw, "Father occupation", p.FatherOccupation)
	row(tw, "Father mobile", p.FatherMobile)
	row(tw, "Mother", p.MotherName)
	row(tw, "Guardian", p.GuardianName)
	row(tw, "Guardian mobile", p.GuardianMobile)
	row(tw, "Current address", p.CurrentAddress)
	row(tw, "Permanent address", p.PermanentAddress)
	row(tw, "Profession", p.Profession)
	row(tw, "Institute", p.InstituteName)
	row(tw, "Institute address", p.InstituteAddress)
	row(tw, "Stay", strings.Trim(p.StartDate+" - "+p.EndDate, " -"))
	row(tw, "Preferred floor", p.PreferredFloor)
	row(tw, "Room", p.RoomNumber)
	row(tw, "Seat", p.BookingSeat)
	row(tw, "Monthly fee", p.MonthlyFee)
	row(tw, "Medical history", p.MedicalHistory)
	row(tw, "Profile picture", p.ProfilePic)
	row(tw, "ID card (front)", p.IDCardFront)
	row(tw, "ID card (back)", p.IDCardBack)
	tw.Flush()
}

func printRoom(w io.Writer, view *response.RoomDetailsView) {
	if view.Room == nil {
		if view.RoomNumber != "" {
			fmt.Fprintf(w, "Room: %s\n", view.RoomNumber)
		}
		fmt.Fprintln(w, view.Message)
		return
	}

	kind := "Non-AC"
	if view.Room.AC {
		kind = "AC"
	}
	tw := newTable(w)
	row(tw, "Room", view.Room.RoomNo)
	row(tw, "Type", kind)
	row(tw, "Seater", view.Room.Seater)
	row(tw, "Fees", view.Room.Fees)
	if b := view.Booking; b != nil {
		row(tw, "Seats booked", b.SeatsBooked)
		row(tw, "Uploaded", b.UploadDate)
		row(tw, "Receipt status", b.ReceiptStatus.Label)
		row(tw, "Receipt", view.ReceiptURL)
	}
	tw.Flush()
}

func printMenu(w io.Writer, page *response.FoodMenuPage) {
	tw := newTable(w)
	fmt.Fprintln(tw, "DAY\tBREAKFAST\tLUNCH\tDINNER")
	for _, entry := range page.Entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", entry.Day, entry.Breakfast, entry.Lunch, entry.Dinner)
	}
	tw.Flush()
	fmt.Fprintln(w, page.Summary)
}
