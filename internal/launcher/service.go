package launcher

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/2cwldys/fear-launcher/internal/install"
	"github.com/2cwldys/fear-launcher/internal/model"
)

// Service launches games through an Opener
type Service struct {
	opener Opener
	logger *zap.Logger
}

// NewService creates a launcher. A nil logger disables logging.
func NewService(opener Opener, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{opener: opener, logger: logger.Named("launcher")}
}

// Launch opens steam://run/<appid> for game. A session without a game path
// is refused with install.ErrGamePathUnset and nothing is opened.
func (s *Service) Launch(session model.Session, game model.Game) error {
	if !session.HasGamePath() {
		s.logger.Warn("launch refused, game path is not set", zap.String("game", game.Name))
		return fmt.Errorf("launch %s: %w", game.Name, install.ErrGamePathUnset)
	}

	url := game.SteamURL()
	if err := s.opener.Open(url); err != nil {
		s.logger.Error("launch failed", zap.String("game", game.Name), zap.String("url", url), zap.Error(err))
		return fmt.Errorf("launch %s: %w", game.Name, err)
	}

	s.logger.Info("game launched", zap.String("game", game.Name), zap.Int("appID", game.SteamAppID))
	return nil
}
