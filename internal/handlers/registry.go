package handlers

// AppHandlers holds all handlers the application registers.
type AppHandlers struct {
	CompanyHandler      *CompanyHandler
	InvestorHandler     *InvestorHandler
	RoundHandler        *RoundHandler
	InterestHandler     *InterestHandler
	FollowHandler       *FollowHandler
	NotificationHandler *NotificationHandler
}
