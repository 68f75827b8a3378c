package services

// ServiceContainer holds every service the application wires up.
type ServiceContainer struct {
	CompanyService      *CompanyService
	InvestorService     *InvestorService
	RoundService        *RoundService
	InterestService     *InterestService
	FollowService       *FollowService
	NotificationService *NotificationService
}
