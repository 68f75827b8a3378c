package dto

type FollowStateResponse struct {
	CompanyID string `json:"company_id"`
	Following bool   `json:"following"`
	Followers int64  `json:"followers"`
}
