package objects_test

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"object-manager/core/storage/mocks"
	"object-manager/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newApp(client *mocks.Client) *fiber.App {
	svc := objects.NewService(client, "docs", "", zap.NewNop())
	app := fiber.New()
	objects.NewHandler(svc).RegisterRoutes(app)
	return app
}

func TestHandlePut(t *testing.T) {
	client := new(mocks.Client)
	client.On("FPutObject", mock.Anything, "docs", "reports/2024/q1.pdf",
		mock.MatchedBy(func(filePath string) bool {
			data, err := os.ReadFile(filePath)
			return err == nil && string(data) == "%PDF-1.4"
		}),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "application/pdf" && opts.UserTags["author"] == "Jose"
		})).Return(minio.UploadInfo{}, nil)

	app := newApp(client)

	req := httptest.NewRequest("PUT", "/objects/content/reports/2024/q1.pdf", strings.NewReader("%PDF-1.4"))
	req.Header.Set("Content-Type", "application/pdf")
	req.Header.Set("X-Tag-Author", "José")

	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestHandleStat(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "docs", "reports/q1.pdf", mock.Anything).
			Return(minio.ObjectInfo{Key: "reports/q1.pdf", Size: 1024}, nil)

		app := newApp(client)
		resp, err := app.Test(httptest.NewRequest("GET", "/objects/meta/reports/q1.pdf", nil), 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var desc objects.Descriptor
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&desc))
		assert.Equal(t, int64(1024), desc.Size)
	})

	t.Run("NotFound", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "docs", "reports/missing.pdf", mock.Anything).
			Return(minio.ObjectInfo{}, notFoundErr())

		app := newApp(client)
		resp, err := app.Test(httptest.NewRequest("GET", "/objects/meta/reports/missing.pdf", nil), 2000)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "docs", "reports/q1.pdf", mock.Anything).Return(nil)

	app := newApp(client)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/content/reports/q1.pdf", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["deleted"])
}

func TestHandleList(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "docs", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == "reports/" && opts.Recursive
	})).Return(listChan(
		minio.ObjectInfo{Key: "reports/q1.pdf", Size: 10},
		minio.ObjectInfo{Key: "reports/q2.pdf", Size: 20},
	))

	app := newApp(client)
	resp, err := app.Test(httptest.NewRequest("GET", "/objects/list?prefix=reports&recursive=true", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var descs []objects.Descriptor
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&descs))
	assert.Len(t, descs, 2)
}

func TestHandleExists(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "docs", mock.Anything).
		Return(listChan(minio.ObjectInfo{Key: "reports/q1.pdf"}))

	app := newApp(client)
	resp, err := app.Test(httptest.NewRequest("GET", "/objects/exists?prefix=reports", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]bool
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body["exists"])
}

func TestHandleDeleteFolder(t *testing.T) {
	client := new(mocks.Client)
	client.On("ListObjects", mock.Anything, "docs", mock.Anything).Return(listChan(
		minio.ObjectInfo{Key: "reports/q1.pdf"},
		minio.ObjectInfo{Key: "reports/q2.pdf"},
	))
	client.On("RemoveObject", mock.Anything, "docs", "reports/q1.pdf", mock.Anything).Return(nil)
	client.On("RemoveObject", mock.Anything, "docs", "reports/q2.pdf", mock.Anything).
		Return(minio.ErrorResponse{Code: "AccessDenied"})

	app := newApp(client)
	resp, err := app.Test(httptest.NewRequest("DELETE", "/objects/folder/reports", nil), 2000)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusMultiStatus, resp.StatusCode)

	var body map[string]any
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["deleted"])
	assert.Contains(t, body["error"], "reports/q2.pdf")
}
