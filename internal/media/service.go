package media

import (
	"context"
	"io"
	"path"

	"github.com/google/uuid"
)

const ContentTypeWebP = "image/webp"

type Service struct {
	processor Processor
	uploader  Uploader
}

func NewService(processor Processor, uploader Uploader) *Service {
	return &Service{processor: processor, uploader: uploader}
}

// Store converts r to WebP and uploads it under folder, returning its URL.
func (s *Service) Store(ctx context.Context, folder string, r io.Reader) (string, error) {
	body, err := s.processor.Process(r)
	if err != nil {
		return "", err
	}
	key := path.Join(folder, uuid.NewString()+".webp")
	return s.uploader.Upload(ctx, key, ContentTypeWebP, body)
}
