package response

import "salon-backend/internal/usecase/commands"

type OnlinePaymentResponse struct {
	TransactionID string `json:"transaction_id"`
	ProviderRef   string `json:"provider_ref"`
	ClientSecret  string `json:"client_secret"`
}

func FromOnlinePayment(p *commands.OnlinePayment) *OnlinePaymentResponse {
	return &OnlinePaymentResponse{
		TransactionID: p.TransactionID.String(),
		ProviderRef:   p.ProviderRef,
		ClientSecret:  p.ClientSecret,
	}
}
