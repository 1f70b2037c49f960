package models

// Ptr returns a pointer to v. It is meant for optional request fields:
//
//	req := models.UpdatePlayerRequest{QQ: models.Ptr("12345")}
func Ptr[T any](v T) *T {
	return &v
}
