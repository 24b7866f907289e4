package usecases

import (
	"context"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/logger"
)

type mockSettingRepository struct {
	GetFunc    func(ctx context.Context, key setting.Key) (*setting.Setting, error)
	GetAllFunc func(ctx context.Context) ([]*setting.Setting, error)
	SetFunc    func(ctx context.Context, s *setting.Setting) error
	DeleteFunc func(ctx context.Context, key setting.Key) error
}

func (m *mockSettingRepository) Get(ctx context.Context, key setting.Key) (*setting.Setting, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockSettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockSettingRepository) Set(ctx context.Context, s *setting.Setting) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, s)
	}
	return nil
}

func (m *mockSettingRepository) Delete(ctx context.Context, key setting.Key) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

type mockMarkdownService struct {
	ToHTMLFunc          func(markdown string) (string, error)
	SanitizeFunc        func(htmlContent string) string
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return markdown, nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
