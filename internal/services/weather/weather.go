package weather

import (
	"context"
	"fmt"

	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/internal/services/presentation"
	"weather-forecast/pkg/logger"
)

// ForecastService runs one page interaction: at most one fetch, then the
// mode-specific shaping.
type ForecastService struct {
	repo  repositories.ForecastRepository
	icons presentation.IconSet
	l     *logger.Logger
}

func NewForecastService(repo repositories.ForecastRepository, icons presentation.IconSet, l *logger.Logger) *ForecastService {
	if icons == nil {
		icons = presentation.DefaultIcons
	}

	return &ForecastService{
		repo:  repo,
		icons: icons,
		l:     l,
	}
}

// FetchForecast fetches the window for req without shaping it.
func (s *ForecastService) FetchForecast(ctx context.Context, req models.ForecastRequest) (models.ForecastWindow, error) {
	s.l.Debug("fetching forecast", map[string]any{"repo": s.repo.Name(), "params": req.RequestParams()})

	window, err := s.repo.FetchForecast(ctx, req.Place, req.Days)
	if err != nil {
		return nil, models.AsForecastError(err)
	}

	s.l.Info("successfully fetched forecast", map[string]any{
		"repo":    s.repo.Name(),
		"samples": len(window),
	})

	return window, nil
}

// Render never returns a bare error. Failures, including panics, come back
// inside the View so the caller can always redraw the page.
func (s *ForecastService) Render(ctx context.Context, req models.ForecastRequest, mode presentation.Mode) (view presentation.View) {
	if !req.HasPlace() {
		return presentation.Awaiting(req, mode)
	}

	defer func() {
		if r := recover(); r != nil {
			fe := models.NewInternal(fmt.Errorf("panic while rendering forecast: %v", r))
			s.logFailure(req, mode, fe)
			view = presentation.Failed(req, mode, fe)
		}
	}()

	window, err := s.FetchForecast(ctx, req)
	if err != nil {
		fe := models.AsForecastError(err)
		s.logFailure(req, mode, fe)
		return presentation.Failed(req, mode, fe)
	}

	view = presentation.Build(req, mode, window, s.icons)
	if view.Err != nil {
		s.logFailure(req, mode, view.Err)
	}

	return view
}

func (s *ForecastService) logFailure(req models.ForecastRequest, mode presentation.Mode, fe *models.ForecastError) {
	fields := map[string]any{
		"place": req.Place,
		"days":  req.Days,
		"mode":  string(mode),
		"kind":  fe.Kind.String(),
	}

	switch fe.Kind {
	case models.KindFetchFailure, models.KindMalformedResponse, models.KindUnmappedCategory:
		s.l.Warning(fe.Error(), fields)
	case models.KindInternal:
		s.l.Error(fe, fields)
	}
}
