package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// MinSigningKeyBytes is the smallest HS256 key accepted (256 bits).
const MinSigningKeyBytes = 32

// LoadSigningKey decodes the base64 encoded token signing key. When kmsKeyURI is set
// the decoded bytes are KMS ciphertext and are decrypted with the keeper at that URI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func LoadSigningKey(ctx context.Context, encodedKey, kmsKeyURI string) ([]byte, error) {
	if encodedKey == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}

	decoded, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode jwt secret: %w", err)
	}

	key := decoded
	if kmsKeyURI != "" {
		key, err = decryptWithKMS(ctx, kmsKeyURI, decoded)
		if err != nil {
			return nil, err
		}
	}

	if len(key) < MinSigningKeyBytes {
		return nil, fmt.Errorf(
			"jwt secret too short: got %d bytes, need at least %d",
			len(key),
			MinSigningKeyBytes,
		)
	}

	return key, nil
}

func decryptWithKMS(ctx context.Context, keyURI string, ciphertext []byte) (key []byte, err error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close KMS keeper: %w", closeErr)
		}
	}()

	key, err = keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt jwt secret: %w", err)
	}
	return key, nil
}
