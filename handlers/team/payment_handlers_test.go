package team

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func paymentProofRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/team/payment", UploadPaymentProof)
	return r
}

// proofForm builds a multipart body with the teamId/paymentDate fields and one
// paymentProof file part of the given content type and size.
func proofForm(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("teamId", "507f1f77bcf86cd799439011"))
	require.NoError(t, w.WriteField("paymentDate", "2026-03-14"))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="paymentProof"; filename="proof.png"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestUploadPaymentProofRejectsOversizedFile(t *testing.T) {
	r := paymentProofRouter()

	body, contentType := proofForm(t, "image/png", maxProofSize+1)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/team/payment", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "less than 5MB")
}

func TestUploadPaymentProofRejectsNonImage(t *testing.T) {
	r := paymentProofRouter()

	body, contentType := proofForm(t, "application/pdf", 128)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/team/payment", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Only image files are allowed")
}

func TestUploadPaymentProofRejectsBadTeamID(t *testing.T) {
	r := paymentProofRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("teamId", "not-an-object-id"))
	require.NoError(t, mw.WriteField("paymentDate", "2026-03-14"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/team/payment", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Invalid team ID format")
}
