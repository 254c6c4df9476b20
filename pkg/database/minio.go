package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"video_platform_service/pkg/media"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient definition minio client, implements media.Store
type MinIOClient struct {
	Client     *minio.Client
	BucketName string
	publicURL  string
}

var _ media.Store = (*MinIOClient)(nil)

// 匿名可讀，讓 asset URL 可以直接給前端使用
const publicReadPolicy = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

// NewMinIOConnection create a new minio connection have retry
func NewMinIOConnection(d MinIOConnection) (*MinIOClient, error) {
	var mc *MinIOClient
	var err error

	for i := 1; i <= d.RetryCount; i++ {
		mc, err = NewMinioClient(d)
		if err == nil {
			log.Printf("minIO[%s] 連線成功 (嘗試 %d 次)", d.Endpoint, i)
			return mc, nil
		}

		log.Printf("minIO[%s] 連線失敗 (嘗試 %d/%d): %v", d.Endpoint, i, d.RetryCount, err)
		time.Sleep(d.RetryInterval * time.Second)
	}

	return mc, err
}

// NewMinioClient create a new minio client and make sure the bucket exists
func NewMinioClient(d MinIOConnection) (*MinIOClient, error) {
	minioClient, err := minio.New(d.Endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(d.User, d.Password, ""),
			Secure: d.UseSSL,
		})
	if err != nil {
		return nil, fmt.Errorf("初始化 MinIO 失敗: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, d.BucketName)
	if err != nil {
		return nil, fmt.Errorf("檢查 bucket [%s] 失敗: %v", d.BucketName, err)
	}

	if !exists {
		if err = minioClient.MakeBucket(ctx, d.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("建立 bucket [%s] 失敗: %v", d.BucketName, err)
		}
		if err = minioClient.SetBucketPolicy(ctx, d.BucketName, fmt.Sprintf(publicReadPolicy, d.BucketName)); err != nil {
			return nil, fmt.Errorf("設定 bucket [%s] policy 失敗: %v", d.BucketName, err)
		}
		log.Printf("Bucket [%s] 建立成功", d.BucketName)
	}

	publicURL := d.PublicURL
	if publicURL == "" {
		scheme := "http"
		if d.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, d.Endpoint)
	}

	return &MinIOClient{
		Client:     minioClient,
		BucketName: d.BucketName,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}, nil
}

// ObjectURL public url of an object
func (m *MinIOClient) ObjectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.BucketName, objectName)
}

// UploadFile minio upload file func
func (m *MinIOClient) UploadFile(ctx context.Context, objectName, filePath, contentType string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("開啟檔案失敗: %v", err)
	}
	defer file.Close()

	_, err = m.Client.PutObject(ctx, m.BucketName, objectName, file, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Upload store a local file under folder, the object name is the asset public id
func (m *MinIOClient) Upload(ctx context.Context, localPath, folder string) (media.Asset, error) {
	if localPath == "" {
		return media.Asset{}, fmt.Errorf("upload: empty file path")
	}
	objectName := path.Join(folder, uuid.New().String()+strings.ToLower(filepath.Ext(localPath)))
	if err := m.UploadFile(ctx, objectName, localPath, media.ContentType(localPath)); err != nil {
		return media.Asset{}, fmt.Errorf("上傳 MinIO 失敗 [%s]: %w", objectName, err)
	}
	return media.Asset{
		PublicID: objectName,
		URL:      m.ObjectURL(objectName),
	}, nil
}

// Delete remove an object, the resource type only matters for logging on minio
func (m *MinIOClient) Delete(ctx context.Context, publicID string, resourceType media.ResourceType) error {
	if publicID == "" {
		return nil
	}
	if err := m.Client.RemoveObject(ctx, m.BucketName, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("刪除 MinIO %s [%s] 失敗: %w", resourceType, publicID, err)
	}
	return nil
}
