package s3store

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"my-pets-api/internal/ports/media"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// namespace es la carpeta raíz dentro del bucket (heredada del API original).
const namespace = "pet-health"

type Config struct {
	Bucket string
	Region string
	// Endpoint custom para providers S3-compatible. Vacío => AWS.
	Endpoint string
	// PublicBaseURL arma los locators que se guardan en DB.
	// Vacío => https://<bucket>.s3.<region>.amazonaws.com
	PublicBaseURL string
}

// Store implementa media.Store sobre S3 (o compatible).
type Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Bucket) == "" {
		return nil, fmt.Errorf("s3store: bucket required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("s3store: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &Store{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
	}, nil
}

func (s *Store) Upload(ctx context.Context, in media.UploadInput) (media.Object, error) {
	folder := strings.Trim(in.Folder, "/")
	if folder == "" {
		folder = media.FolderFiles
	}

	ext := strings.ToLower(path.Ext(in.Filename))
	key := path.Join(namespace, folder, uuid.NewString()+ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        in.Body,
		ContentType: aws.String(in.ContentType),
	})
	if err != nil {
		return media.Object{}, fmt.Errorf("s3store: put object: %w", err)
	}

	return media.Object{
		URL:    s.baseURL + "/" + key,
		Format: formatTag(ext),
	}, nil
}

// Delete deriva la key desde el locator y borra el objeto.
// Locators con forma desconocida se ignoran (el borrado del row no debe
// quedar bloqueado por un locator viejo o externo).
func (s *Store) Delete(ctx context.Context, locator string) error {
	key, ok := KeyFromLocator(locator)
	if !ok {
		return nil
	}

	// DeleteObject en S3 es idempotente: borrar una key inexistente no falla.
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3store: delete object: %w", err)
	}
	return nil
}

// KeyFromLocator extrae la key desde un locator con forma
// .../<namespace>/<folder>/<file>. Devuelve false si no calza.
func KeyFromLocator(locator string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(locator))
	if err != nil {
		return "", false
	}

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) < 3 {
		return "", false
	}

	key := strings.Join(segs[len(segs)-3:], "/")
	if !strings.HasPrefix(key, namespace+"/") {
		return "", false
	}
	return key, true
}

func formatTag(ext string) string {
	f := strings.TrimPrefix(ext, ".")
	if f == "" {
		return "file"
	}
	return f
}
