package command

import (
	"context"

	"patentgate/internal/dto"
	"patentgate/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CreateKeyHandler struct {
	logger            *zap.Logger
	partnerKeyService *service.PartnerKeyService
}

func NewCreateKeyHandler(
	logger *zap.Logger,
	partnerKeyService *service.PartnerKeyService,
) *CreateKeyHandler {
	return &CreateKeyHandler{
		logger:            logger,
		partnerKeyService: partnerKeyService,
	}
}

// CreateKey 離線發 key：不經過 admin API，部署初期或緊急換發時用
func (handler *CreateKeyHandler) CreateKey(cmd *cobra.Command, args []string) {
	partnerName, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	perMinute, _ := cmd.Flags().GetInt("rate-limit-minute")
	perDay, _ := cmd.Flags().GetInt("rate-limit-day")
	expiresInDays, _ := cmd.Flags().GetInt("expires-in-days")

	createDto := &dto.CreatePartnerKeyDto{
		PartnerName: partnerName,
		Email:       email,
	}
	if perMinute > 0 {
		createDto.RateLimitPerMinute = &perMinute
	}
	if perDay > 0 {
		createDto.RateLimitPerDay = &perDay
	}
	if expiresInDays > 0 {
		createDto.ExpiresInDays = &expiresInDays
	}

	created, err := handler.partnerKeyService.Create(context.Background(), createDto)
	if err != nil {
		handler.logger.Error("create partner key failed", zap.Error(err))
		cmd.PrintErrln("create partner key failed:", err)
		return
	}

	cmd.Println("partner key created")
	cmd.Println("  id:     ", created.ID)
	cmd.Println("  partner:", created.PartnerName)
	// token 僅此一次，遺失只能重發
	cmd.Println("  token:  ", created.Token)
	cmd.Printf("  limits:  %d/min, %d/day\n", created.RateLimitPerMinute, created.RateLimitPerDay)
	if created.ExpiresAt != nil {
		cmd.Println("  expires:", created.ExpiresAt.Format("2006-01-02"))
	}
}
