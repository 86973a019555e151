package stats

import "gympulse/internal/recipe"

type AccountCounts struct {
	Total    int `json:"total" db:"accounts_total"`
	Trainers int `json:"trainers" db:"accounts_trainers"`
	Users    int `json:"users" db:"accounts_users"`
}

type ProfileCounts struct {
	Paid   int `json:"paid" db:"profiles_paid"`
	Unpaid int `json:"unpaid" db:"profiles_unpaid"`
}

func (p ProfileCounts) Total() int { return p.Paid + p.Unpaid }

type AttendanceCounts struct {
	Total    int `json:"total" db:"attendance_total"`
	Pending  int `json:"pending" db:"attendance_pending"`
	Accepted int `json:"accepted" db:"attendance_accepted"`
}

// TableCounts is a single-row snapshot of every counted table.
type TableCounts struct {
	AccountCounts
	ProfileCounts
	AttendanceCounts
	DietPlans    int `db:"diet_plans"`
	FoodEntries  int `db:"food_entries"`
	Videos       int `db:"videos"`
	Reviews      int `db:"reviews"`
	ChatMessages int `db:"chat_messages"`
}

type Report struct {
	Accounts     AccountCounts    `json:"accounts"`
	Profiles     ProfileCounts    `json:"profiles"`
	Attendance   AttendanceCounts `json:"attendance"`
	DietPlans    int              `json:"diet_plans"`
	FoodEntries  int              `json:"food_entries"`
	Recipes      recipe.Counts    `json:"recipes"`
	Videos       int              `json:"videos"`
	Reviews      int              `json:"reviews"`
	ChatMessages int              `json:"chat_messages"`
	GrandTotal   int              `json:"grand_total"`
}
