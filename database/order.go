package database

// Order is an explicit sort key passed at every listing call site.
type Order string

const (
	OrderByCreatedDesc   Order = "created_date DESC, id DESC"
	OrderByStartDateDesc Order = "start_date DESC, id DESC"
	OrderByCategoryName  Order = "category ASC, name ASC"
)

func (o Order) String() string {
	return string(o)
}
