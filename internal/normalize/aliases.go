package normalize

// Alias precedence lists. Order matters: earlier keys win.
var (
	UserIDKeys = []string{"id", "user_id"}
	NameKeys   = []string{"name"}
	EmailKeys  = []string{"email"}

	// phone falls back to the father's, then the local guardian's mobile
	PhoneKeys            = []string{"phone", "Fmob", "lgmob"}
	CurrentAddressKeys   = []string{"Caddress", "caddress"}
	InstituteNameKeys    = []string{"insName", "insname"}
	InstituteAddressKeys = []string{"insAdd", "insadd"}
	RoomNumberKeys       = []string{"rno", "room_no", "roomNumber"}
	MonthlyFeeKeys       = []string{"monthlyFee", "fees", "fee"}
	BookingSeatKeys      = []string{"bookingSeat", "seater"}
	ProfilePicKeys       = []string{"profile_pic", "profilePic"}
	DueDateKeys          = []string{"due_date", "dueDate"}

	RoomNoKeys      = []string{"room_no", "rno", "roomNumber"}
	RoomFeeKeys     = []string{"fees", "fee", "monthlyFee"}
	RoomSeaterKeys  = []string{"seater", "seats"}
	RoomACKeys      = []string{"AC", "ac"}
	RoomPostingKeys = []string{"posting_date"}

	MenuBreakfastKeys = []string{"breakfast", "it1"}
	MenuLunchKeys     = []string{"lunch", "it2"}
	MenuDinnerKeys    = []string{"dinner", "it3"}

	ComplaintIDKeys   = []string{"complaint_id", "id"}
	ComplaintDateKeys = []string{"Date", "date"}
	ComplaintBodyKeys = []string{"mill", "complaint"}
)

// UserAliasGroups are the user fields stored under more than one spelling.
// Canonical folds each group onto its first key. PhoneKeys is not a group:
// Fmob and lgmob are fields of their own that phone merely falls back to.
var UserAliasGroups = [][]string{
	UserIDKeys,
	CurrentAddressKeys,
	InstituteNameKeys,
	InstituteAddressKeys,
	RoomNumberKeys,
	MonthlyFeeKeys,
	BookingSeatKeys,
	ProfilePicKeys,
	DueDateKeys,
}

// sensitiveKeys are removed from every user record before it is cached
var sensitiveKeys = []string{"password"}
