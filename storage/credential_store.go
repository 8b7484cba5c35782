package storage

import (
	"os"
	"path/filepath"

	"github.com/grandhotel/restaurant-pos/models"
)

func (s *Store) credentialPath() string {
	return filepath.Join(s.root, "admin.json")
}

// AdminCredential loads the single stored admin login. A missing file is an
// error here: without a credential nobody can authenticate, so the seed must
// have run.
func (s *Store) AdminCredential() (models.AdminCredential, error) {
	var cred models.AdminCredential
	if err := s.readJSON(s.credentialPath(), &cred); err != nil {
		return models.AdminCredential{}, err
	}
	return cred, nil
}

// SeedAdminCredential writes the credential file if none exists yet.
// passwordHash must already be bcrypt-hashed.
func (s *Store) SeedAdminCredential(username, passwordHash string) error {
	if _, err := os.Stat(s.credentialPath()); err == nil {
		return nil
	}
	return s.writeJSON(s.credentialPath(), models.AdminCredential{
		Username: username,
		Password: passwordHash,
	})
}
