package application

import (
	"fmt"

	"thirdcoast.systems/hydra/internal/config"
	"thirdcoast.systems/hydra/pkg/encryption"
)

// InitEncryptionManager builds the manager used to seal stored values.
// It returns nil without error when no ENCRYPTION_KEY is configured.
func InitEncryptionManager(conf config.Config) (*encryption.Manager, error) {
	if conf.EncryptionKey == "" {
		return nil, nil
	}

	manager, err := encryption.NewManagerFromHex(conf.EncryptionKey, conf.EncryptionCipher)
	if err != nil {
		return nil, fmt.Errorf("create encryption manager: %w", err)
	}
	return manager, nil
}
