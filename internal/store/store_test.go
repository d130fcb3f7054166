package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir(), "correct horse battery staple")
	require.NoError(t, err)
	return s
}

func savedResume() *types.StructuredResume {
	resume := types.NewStructuredResume()
	resume.PersonalInfo.Name = "Jane Doe"
	resume.Summary = "Engineer."
	return resume
}

func TestOpen_EmptyPassphraseRejected(t *testing.T) {
	_, err := Open(t.TempDir(), "")

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	s := openStore(t)
	resume := savedResume()

	require.NoError(t, s.Save(resume))
	require.NotEmpty(t, resume.ID, "save assigns an id")
	assert.Equal(t, 1, resume.Version)
	assert.NotEmpty(t, resume.LastModified)

	loaded, err := s.Load(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, resume.ID, loaded.ID)
	assert.Equal(t, "Jane Doe", loaded.PersonalInfo.Name)
	assert.Equal(t, 1, loaded.Version)
	assert.NotNil(t, loaded.Experience, "defaults restored after decryption")
}

func TestSave_VersionIncrementsPerSave(t *testing.T) {
	s := openStore(t)
	resume := savedResume()

	require.NoError(t, s.Save(resume))
	firstID := resume.ID
	require.NoError(t, s.Save(resume))

	assert.Equal(t, firstID, resume.ID, "id is stable across saves")
	assert.Equal(t, 2, resume.Version)

	loaded, err := s.Load(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Version)
}

func TestSave_FileIsNotPlaintext(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, "passphrase")
	require.NoError(t, err)

	resume := savedResume()
	require.NoError(t, s.Save(resume))

	raw, err := os.ReadFile(filepath.Join(dir, resume.ID+".resume"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "Jane Doe")
	assert.NotContains(t, string(raw), "personal_info")
}

func TestLoad_UnknownID(t *testing.T) {
	s := openStore(t)

	_, err := s.Load("no-such-id")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-id", notFound.ID)
}

func TestLoad_WrongPassphrase(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, "right passphrase")
	require.NoError(t, err)

	resume := savedResume()
	require.NoError(t, s.Save(resume))

	wrong, err := Open(dir, "wrong passphrase")
	require.NoError(t, err, "opening never verifies the passphrase")

	_, err = wrong.Load(resume.ID)
	var decrypt *DecryptError
	assert.ErrorAs(t, err, &decrypt)
}

func TestLoad_TruncatedFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, "passphrase")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.resume"), []byte("tiny"), 0o600))

	_, err = s.Load("broken")
	var decrypt *DecryptError
	assert.ErrorAs(t, err, &decrypt)
}

func TestList_ReturnsSavedEntries(t *testing.T) {
	s := openStore(t)

	first := savedResume()
	require.NoError(t, s.Save(first))
	second := savedResume()
	second.PersonalInfo.Name = "John Smith"
	require.NoError(t, s.Save(second))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name, entries[1].Name}
	assert.ElementsMatch(t, []string{"Jane Doe", "John Smith"}, names)
	for _, e := range entries {
		assert.Equal(t, 1, e.Version)
		assert.NotEmpty(t, e.LastModified)
	}
}

func TestList_SkipsUndecryptableFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir, "passphrase")
	require.NoError(t, err)

	require.NoError(t, s.Save(savedResume()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.resume"), []byte("garbage data here"), 0o600))

	entries, err := s.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestList_EmptyStore(t *testing.T) {
	entries, err := openStore(t).List()
	require.NoError(t, err)

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	resume := savedResume()
	require.NoError(t, s.Save(resume))

	require.NoError(t, s.Delete(resume.ID))

	_, err := s.Load(resume.ID)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)

	err = s.Delete(resume.ID)
	assert.ErrorAs(t, err, &notFound)
}

func TestOpen_ReusesSaltAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	first, err := Open(dir, "passphrase")
	require.NoError(t, err)

	resume := savedResume()
	require.NoError(t, first.Save(resume))

	second, err := Open(dir, "passphrase")
	require.NoError(t, err)

	loaded, err := second.Load(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", loaded.PersonalInfo.Name)
}
