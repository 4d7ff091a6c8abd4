package request

// IDRequest carries the identifier of a single movie or director.
type IDRequest struct {
	ID string `json:"id" validate:"required"`
}
