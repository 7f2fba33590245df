package contracts

import "context"

// PhotoStorage persists otoscopy photos and hands back a presigned URL the
// clinic tablet can render without registry credentials.
type PhotoStorage interface {
	UploadEarPhoto(ctx context.Context, objectName string, data []byte, contentType string) (string, error)
}
