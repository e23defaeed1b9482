package models

// IDParams is the path shape shared by every /:id route.
type IDParams struct {
	ID string `params:"id" validate:"required,min=1"`
}

// ListQuery is the query shape for list endpoints without custom sorting.
type ListQuery struct {
	Page   *int   `query:"page" validate:"omitempty,min=1,max=100000"`
	Limit  *int   `query:"limit" validate:"omitempty,min=1,max=100"`
	Search string `query:"search"`
	Status string `query:"status"`
	City   string `query:"city"`
}

