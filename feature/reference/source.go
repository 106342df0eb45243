package reference

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mnp-alarm/core/database"
	"mnp-alarm/core/reconcile"
	"mnp-alarm/core/storage"

	"github.com/minio/minio-go/v7"
	"gorm.io/gorm"
)

// Source loads the reference set. Any error is a setup error: the run must
// stop before issuing lookups.
type Source interface {
	Load(ctx context.Context) (reconcile.ReferenceSet, error)
}

// New returns the Source selected by cfg. client and db are only required by
// the storage and database sources respectively.
func New(cfg Config, client storage.Client, bucket string, db *gorm.DB) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Source {
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("reference source %q needs a storage client", cfg.Source)
		}
		return &StorageSource{Client: client, Bucket: bucket, Object: cfg.Path}, nil
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("reference source %q needs a database connection", cfg.Source)
		}
		return &DatabaseSource{DB: db, Table: cfg.Table}, nil
	default:
		return &FileSource{Path: cfg.Path}, nil
	}
}

// FileSource reads a JSON or YAML document from local disk.
type FileSource struct {
	Path string
}

// Load reads and parses the file.
func (s *FileSource) Load(ctx context.Context) (reconcile.ReferenceSet, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return reconcile.ReferenceSet{}, fmt.Errorf("failed to read reference file: %w", err)
	}
	return Parse(data, s.Path)
}

// StorageSource reads a JSON or YAML document from an object storage bucket.
type StorageSource struct {
	Client storage.Client
	Bucket string
	Object string
}

// Load downloads and parses the object.
func (s *StorageSource) Load(ctx context.Context) (reconcile.ReferenceSet, error) {
	data, err := storage.ReadObject(ctx, s.Client, s.Bucket, s.Object)
	if err != nil {
		return reconcile.ReferenceSet{}, err
	}
	return Parse(data, s.Object)
}

// Row is one reference entry stored in a database table.
type Row struct {
	GroupName string  `gorm:"column:group_name"`
	Number    string  `gorm:"column:number"`
	NetworkID *string `gorm:"column:network_id"`
	OwnerID   *string `gorm:"column:owner_id"`
}

var rowColumns = []string{"group_name", "number", "network_id", "owner_id"}

// DatabaseSource reads reference rows from a table.
type DatabaseSource struct {
	DB    *gorm.DB
	Table string
}

// Load verifies the table schema and reads every row.
func (s *DatabaseSource) Load(ctx context.Context) (reconcile.ReferenceSet, error) {
	if err := database.RequireColumns(s.DB, s.Table, rowColumns...); err != nil {
		return reconcile.ReferenceSet{}, err
	}

	var rows []Row
	err := s.DB.WithContext(ctx).
		Table(s.Table).
		Select(rowColumns).
		Order("group_name, number").
		Find(&rows).Error
	if err != nil {
		return reconcile.ReferenceSet{}, fmt.Errorf("failed to read reference table %s: %w", s.Table, err)
	}

	// Rows arrive ordered by group then number, which is the set's order.
	var (
		names  []string
		groups = make(map[string]*reconcile.Group)
	)
	for _, row := range rows {
		group, ok := groups[row.GroupName]
		if !ok {
			group = &reconcile.Group{}
			groups[row.GroupName] = group
			names = append(names, row.GroupName)
		}
		rec := reconcile.Record{NetworkID: row.NetworkID, OwnerID: row.OwnerID}
		if err := group.Add(row.Number, rec); err != nil {
			return reconcile.ReferenceSet{}, fmt.Errorf("duplicate reference row for group %s number %s", row.GroupName, row.Number)
		}
	}

	var set reconcile.ReferenceSet
	for _, name := range names {
		if err := set.Add(name, *groups[name]); err != nil {
			return reconcile.ReferenceSet{}, err
		}
	}
	return set, nil
}

// Push validates a local reference file and uploads it to the bucket.
func Push(ctx context.Context, client storage.Client, bucket, object, path string) (minio.UploadInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to read reference file: %w", err)
	}
	if _, err := Parse(data, path); err != nil {
		return minio.UploadInfo{}, err
	}

	contentType := "application/json"
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		contentType = "application/yaml"
	}

	info, err := client.PutObject(ctx, bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to upload reference object %s: %w", object, err)
	}
	return info, nil
}

// GroupSummary is the size of one reference group.
type GroupSummary struct {
	Name    string `json:"name"`
	Numbers int    `json:"numbers"`
}

// Summarize lists group sizes in group order.
func Summarize(set reconcile.ReferenceSet) []GroupSummary {
	out := make([]GroupSummary, 0, set.Len())
	for _, name := range set.GroupNames() {
		out = append(out, GroupSummary{Name: name, Numbers: set.Group(name).Len()})
	}
	return out
}
