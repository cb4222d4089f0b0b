package upstream

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"onboarding-dashboard/core/storage"

	"github.com/minio/minio-go/v7"
)

// DocumentsPrefix is the bucket prefix holding client documents.
const DocumentsPrefix = "documents/"

// maxDocumentSize bounds how much of a document is read into memory.
const maxDocumentSize = 10 << 20

// StorageDocuments reads extracted document text from object storage at
// documents/<client_id>/<regulation>.txt.
type StorageDocuments struct {
	client storage.Client
	bucket string
	now    func() time.Time
}

// NewStorageDocuments creates a bucket-backed DocumentSource.
func NewStorageDocuments(client storage.Client, bucket string) *StorageDocuments {
	return &StorageDocuments{client: client, bucket: bucket, now: time.Now}
}

// ObjectName returns the key of a client's document for a regulation.
// Path separators in the regulation name are replaced so "AML/KYC" stays one key segment.
func ObjectName(clientID, regulation string) string {
	safe := strings.NewReplacer("/", "_", " ", "_").Replace(regulation)
	return path.Join(DocumentsPrefix, clientID, safe+".txt")
}

// FetchDocument downloads and reads the document.
func (s *StorageDocuments) FetchDocument(ctx context.Context, clientID, regulation string) (*Document, error) {
	name := ObjectName(clientID, regulation)

	obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", name, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return &Document{
		ID:      name,
		Type:    simulatedDocumentType,
		Content: string(data),
		Metadata: DocumentMetadata{
			FileSizeKB:   (len(data) + 1023) / 1024,
			Pages:        1,
			CreatedDate:  s.now(),
			SourceSystem: "object_storage",
		},
	}, nil
}
