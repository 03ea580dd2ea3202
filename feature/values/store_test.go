package values_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"object-manager/core/storage/mocks"
	"object-manager/feature/objects"
	"object-manager/feature/values"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newStore(t *testing.T, client *mocks.Client) (*values.Store, string) {
	t.Helper()
	tempDir := t.TempDir()
	svc := objects.NewService(client, "docs", tempDir, zap.NewNop())
	return values.NewStore(svc, tempDir, zap.NewNop()), tempDir
}

func dirEntries(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	return len(entries)
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	var payload []byte

	client := new(mocks.Client)
	client.On("FPutObject", mock.Anything, "docs", "cache/session", mock.Anything,
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == values.ContentType
		})).
		Run(func(args mock.Arguments) {
			data, err := os.ReadFile(args.String(3))
			assert.NoError(t, err)
			payload = data
		}).
		Return(minio.UploadInfo{}, nil)
	client.On("StatObject", mock.Anything, "docs", "cache/session", mock.Anything).
		Return(minio.ObjectInfo{Key: "cache/session"}, nil)
	client.On("FGetObject", mock.Anything, "docs", "cache/session", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.NoError(t, os.WriteFile(args.String(3), payload, 0o600))
		}).
		Return(nil)

	store, tempDir := newStore(t, client)

	in := map[string]any{"user": "jose", "visits": 7}
	assert.NoError(t, store.Put(context.Background(), "cache", "session", in, nil))
	assert.Zero(t, dirEntries(t, tempDir), "staging file should be removed after a successful upload")

	var out map[string]any
	found, err := store.Get(context.Background(), "cache", "session", &out)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
	assert.Zero(t, dirEntries(t, tempDir), "staging file should be removed after decode")
}

func TestStore_PutUploadFailureLeavesStagedFile(t *testing.T) {
	client := new(mocks.Client)
	client.On("FPutObject", mock.Anything, "docs", "cache/session", mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("broken pipe"))

	store, tempDir := newStore(t, client)

	err := store.Put(context.Background(), "cache", "session", map[string]any{"user": "jose"}, nil)
	assert.Equal(t, objects.KindObjectWrite, objects.KindOf(err))
	assert.Equal(t, 1, dirEntries(t, tempDir), "failed upload leaves the staged file for the cleanup sweep")
}

func TestStore_GetMissingValue(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "docs", "cache/missing", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	store, _ := newStore(t, client)

	var out map[string]any
	found, err := store.Get(context.Background(), "cache", "missing", &out)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestStore_GetForeignPayload(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, "docs", "cache/session", mock.Anything).
		Return(minio.ObjectInfo{Key: "cache/session"}, nil)
	client.On("FGetObject", mock.Anything, "docs", "cache/session", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			assert.NoError(t, os.WriteFile(args.String(3), []byte("not ours"), 0o600))
		}).
		Return(nil)

	store, _ := newStore(t, client)

	var out map[string]any
	found, err := store.Get(context.Background(), "cache", "session", &out)
	assert.False(t, found)
	assert.ErrorIs(t, err, values.ErrForeignPayload)
}
