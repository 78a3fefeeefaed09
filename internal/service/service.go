package service

import (
	"github.com/hance08/sats/internal/config"
	"github.com/hance08/sats/internal/rates"
	"github.com/hance08/sats/internal/store"
	"go.uber.org/zap"
)

type Service struct {
	Account *AccountService
	Rates   *rates.Resolver
	Config  *config.Config
}

func NewService(accounts store.AccountRepository, resolver *rates.Resolver, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Account: NewAccountService(accounts, logger),
		Rates:   resolver,
		Config:  cfg,
	}
}
