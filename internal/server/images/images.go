// Package images keeps project image payloads. The API always speaks data
// URIs; with an object store configured the payloads are moved out of the
// database and only references are persisted.
package images

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/showcase/internal/common"
	"github.com/dmitrijs2005/showcase/internal/filex"
	"github.com/google/uuid"
)

// RefPrefix marks an image that lives in the object store.
const RefPrefix = "object:"

// MaxImageSize caps one decoded image.
const MaxImageSize = filex.MaxImageSize

// ObjectStore is the blob storage images are offloaded to.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) (contentType string, data []byte, err error)
	Delete(ctx context.Context, key string) error
}

// Codec converts between the data URIs of the API and what is stored. A
// Codec without a store passes images through unchanged.
type Codec struct {
	store ObjectStore
	now   func() time.Time
	newID func() string
}

func NewCodec(store ObjectStore) *Codec {
	return &Codec{
		store: store,
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Offloading reports whether images go to an object store.
func (c *Codec) Offloading() bool {
	return c.store != nil
}

// Validate checks that every entry is a base64 image data URI within
// MaxImageSize. Errors match common.ErrValidation.
func Validate(images []string) error {
	for i, img := range images {
		mt, data, err := filex.ParseDataURI(img)
		if err != nil {
			return common.Invalid("La imagen %d no es un data URI válido", i+1)
		}
		if !strings.HasPrefix(mt, "image/") {
			return common.Invalid("La imagen %d no es una imagen (%s)", i+1, mt)
		}
		if len(data) > MaxImageSize {
			return common.Invalid("La imagen %d supera los %d bytes", i+1, MaxImageSize)
		}
	}
	return nil
}

// Key builds the object key for a new image.
func (c *Codec) Key() string {
	d := c.now()
	return fmt.Sprintf("projects/%d/%02d/%02d/%s", d.Year(), d.Month(), d.Day(), c.newID())
}

// Externalize stores every data URI in the object store and returns the
// references to persist. Entries that already are references are kept.
func (c *Codec) Externalize(ctx context.Context, images []string) ([]string, error) {
	if c.store == nil {
		return images, nil
	}

	out := make([]string, 0, len(images))
	for _, img := range images {
		if strings.HasPrefix(img, RefPrefix) {
			out = append(out, img)
			continue
		}
		mt, data, err := filex.ParseDataURI(img)
		if err != nil {
			return nil, common.Invalid("Imagen inválida: %v", err)
		}
		key := c.Key()
		if err := c.store.Put(ctx, key, mt, data); err != nil {
			_ = c.Remove(ctx, out)
			return nil, fmt.Errorf("error storing image: %w", err)
		}
		out = append(out, RefPrefix+key)
	}
	return out, nil
}

// Inline turns stored references back into data URIs.
func (c *Codec) Inline(ctx context.Context, stored []string) ([]string, error) {
	out := make([]string, 0, len(stored))
	for _, img := range stored {
		key, ok := strings.CutPrefix(img, RefPrefix)
		if !ok {
			out = append(out, img)
			continue
		}
		if c.store == nil {
			return nil, fmt.Errorf("image %s: no object store configured", key)
		}
		mt, data, err := c.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("error loading image %s: %w", key, err)
		}
		out = append(out, filex.EncodeDataURI(mt, data))
	}
	return out, nil
}

// Remove deletes the stored objects behind refs. Inline entries are skipped.
func (c *Codec) Remove(ctx context.Context, refs []string) error {
	if c.store == nil {
		return nil
	}
	var errs []error
	for _, img := range refs {
		if key, ok := strings.CutPrefix(img, RefPrefix); ok {
			if err := c.store.Delete(ctx, key); err != nil {
				errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
			}
		}
	}
	return errors.Join(errs...)
}
