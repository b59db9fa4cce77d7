package dbmongo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MediaStorage stores post media in GridFS. Posts keep only the returned
// reference (the hex ObjectID); the bytes are never read back on the write
// path.
type MediaStorage struct {
	gridFS *gridfs.Bucket
}

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

type MediaFile struct {
	ID         string    `json:"id"`       // GridFS ObjectID hex
	Filename   string    `json:"filename"` // original filename
	Size       int64     `json:"size"`
	MediaType  string    `json:"media_type"` // image or video
	UploadedBy uint64    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadFile writes the bytes into GridFS and returns the stable reference.
func (ms *MediaStorage) UploadFile(ctx context.Context, filename, mediaType string, uploaderID uint64, data []byte) (string, error) {
	metadata := bson.M{
		"media_type":  mediaType,
		"uploaded_by": uploaderID,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("file copy failed: %w", err)
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// DownloadFile streams a stored file back out for the media endpoint.
func (ms *MediaStorage) DownloadFile(ctx context.Context, fileID string) (io.Reader, *MediaFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	mediaFile := &MediaFile{
		ID:         fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MediaType:  getStringFromMap(metadata, "media_type"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, mediaFile, nil
}

func (ms *MediaStorage) DeleteFile(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
