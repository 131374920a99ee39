package submit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakashmaharayt980/fatafatsewalive-sub001/internal/domain"
)

type fakeBlobFetcher struct {
	data map[string][]byte
}

func (f *fakeBlobFetcher) Download(_ context.Context, _, key string) ([]byte, error) {
	return f.data[key], nil
}

func TestSubmit_JSONPayload(t *testing.T) {
	var received CreditCardPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bucket", 5*time.Second, &fakeBlobFetcher{})
	err := client.Submit(context.Background(), &Payload{
		Kind: PayloadJSON,
		JSON: &CreditCardPayload{FullName: "Sita Sharma", CardNumber: "4111 1111 1111 1111"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sita Sharma", received.FullName)
}

func TestSubmit_MultipartPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Equal(t, "new_card", r.FormValue("financing_option"))

		file, header, err := r.FormFile("applicant_photo")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "photo.jpg", header.Filename)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	blobs := &fakeBlobFetcher{data: map[string][]byte{"emi/s/applicant_photo": []byte("jpegbytes")}}
	client := NewClient(server.URL, "bucket", 5*time.Second, blobs)

	err := client.Submit(context.Background(), &Payload{
		Kind:   PayloadMultipart,
		Fields: map[string]string{"financing_option": "new_card"},
		Attachments: []Attachment{{
			FieldName: "applicant_photo",
			Ref: &domain.DocumentRef{
				OriginalName: "photo.jpg",
				StorageKey:   "emi/s/applicant_photo",
			},
		}},
	})
	require.NoError(t, err)
}

func TestSubmit_PartnerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"income too low"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "bucket", 5*time.Second, &fakeBlobFetcher{})
	err := client.Submit(context.Background(), &Payload{Kind: PayloadJSON, JSON: &CreditCardPayload{}})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "income too low")
}

func TestSubmit_UnknownKind(t *testing.T) {
	client := NewClient("http://localhost:0", "bucket", time.Second, &fakeBlobFetcher{})
	err := client.Submit(context.Background(), &Payload{Kind: PayloadKind("carrier-pigeon")})
	assert.ErrorIs(t, err, domain.ErrInvalidOption)
}
