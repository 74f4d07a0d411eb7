package dto

// UpdateBusinessRequest carries partial settings updates; nil fields keep
// their current values.
type UpdateBusinessRequest struct {
	ShopName *string `json:"shop_name"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	LogoURL  *string `json:"logo_url"`
}

type PlatformStatsResponse struct {
	TotalBusinesses     int64  `json:"totalBusinesses"`
	ActiveSubscriptions int64  `json:"activeSubscriptions"`
	TotalSales          string `json:"totalRevenueAcrossPlatform"`
}

type PlatformRevenueResponse struct {
	PayingBusinesses        int64 `json:"payingBusinesses"`
	EstimatedMonthlyRevenue int64 `json:"estimatedMonthlyRevenue"`
}

type AdvisorResponse struct {
	Answer string `json:"answer"`
}
