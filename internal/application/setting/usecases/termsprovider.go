package usecases

import (
	"context"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/services/markdown"
)

// TermsProvider renders the terms-and-conditions setting to sanitized HTML
// for the public ticket view and the printed ticket.
type TermsProvider struct {
	settingRepo setting.Repository
	renderer    markdown.Service
	logger      logger.Interface
}

func NewTermsProvider(settingRepo setting.Repository, renderer markdown.Service, log logger.Interface) *TermsProvider {
	return &TermsProvider{
		settingRepo: settingRepo,
		renderer:    renderer,
		logger:      log,
	}
}

// TermsHTML returns the rendered terms text, empty when unset or broken.
func (p *TermsProvider) TermsHTML(ctx context.Context) string {
	s, err := p.settingRepo.Get(ctx, setting.KeyTermsText)
	if err != nil {
		p.logger.Errorw("failed to load terms text", "error", err)
		return ""
	}
	raw := s.StringValue()
	if raw == "" {
		return ""
	}

	rendered, err := p.renderer.ToHTMLSanitized(raw)
	if err != nil {
		p.logger.Errorw("failed to render terms text", "error", err)
		return ""
	}
	return rendered
}
