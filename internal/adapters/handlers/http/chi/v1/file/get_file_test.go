package file_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrysvd/test-task/internal/core/domain"
	filesvc "github.com/dmitrysvd/test-task/internal/core/service/file"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetFileV1_Success(t *testing.T) {
	// Arrange
	mockService := filesvc.NewMockFileService()
	router := newTestRouter(mockService)

	uid := uuid.New()
	record := &domain.UploadedFile{
		UID:             uid,
		Size:            12,
		Format:          "text/html",
		OriginalName:    "text",
		Extension:       strPtr("txt"),
		UploadedToCloud: true,
	}
	mockService.On("GetFile", mock.Anything, uid).Return(record, nil)

	req := httptest.NewRequest(http.MethodGet, "/files/"+uid.String(), nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	expected := fmt.Sprintf(
		`{"uid":%q,"size":12,"format":"text/html","original_name":"text","extension":"txt","is_uploaded_to_cloud":true}`,
		uid,
	)
	assert.JSONEq(t, expected, rec.Body.String())
}

func TestGetFileV1_NullExtension(t *testing.T) {
	// Arrange
	mockService := filesvc.NewMockFileService()
	router := newTestRouter(mockService)

	uid := uuid.New()
	record := &domain.UploadedFile{UID: uid, Size: 3, OriginalName: "Makefile"}
	mockService.On("GetFile", mock.Anything, uid).Return(record, nil)

	req := httptest.NewRequest(http.MethodGet, "/files/"+uid.String(), nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	expected := fmt.Sprintf(
		`{"uid":%q,"size":3,"format":"","original_name":"Makefile","extension":null,"is_uploaded_to_cloud":false}`,
		uid,
	)
	assert.JSONEq(t, expected, rec.Body.String())
}

func TestGetFileV1_NotFound(t *testing.T) {
	// Arrange
	mockService := filesvc.NewMockFileService()
	router := newTestRouter(mockService)

	uid := uuid.New()
	mockService.On("GetFile", mock.Anything, uid).Return(nil, domain.ErrFileNotFound)

	req := httptest.NewRequest(http.MethodGet, "/files/"+uid.String(), nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetFileV1_MalformedUID(t *testing.T) {
	// Arrange
	mockService := filesvc.NewMockFileService()
	router := newTestRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/files/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusBadRequest, rec.Code)
	mockService.AssertNotCalled(t, "GetFile", mock.Anything, mock.Anything)
}

func TestGetFileV1_ServiceError(t *testing.T) {
	// Arrange
	mockService := filesvc.NewMockFileService()
	router := newTestRouter(mockService)

	uid := uuid.New()
	mockService.On("GetFile", mock.Anything, uid).Return(nil, fmt.Errorf("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/files/"+uid.String(), nil)
	rec := httptest.NewRecorder()

	// Act
	router.ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}
