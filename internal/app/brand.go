package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/media"
	"github.com/dmitrijs2005/arunika/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func (a *App) Brand() models.Brand {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.brand
}

func (a *App) SetBrandName(ctx context.Context, name string) error {
	if err := a.guard(); err != nil {
		return err
	}
	if name == "" {
		return fmt.Errorf("%w: empty brand name", common.ErrInvalidInput)
	}
	a.mu.Lock()
	a.brand.Name = name
	a.mu.Unlock()
	return a.syncer.BrandName(ctx, name)
}

// SetBrandLogo stores a logo reference: a URL or a data URI.
func (a *App) SetBrandLogo(ctx context.Context, logo string) error {
	if err := a.guard(); err != nil {
		return err
	}
	a.mu.Lock()
	a.brand.Logo = logo
	a.mu.Unlock()
	return a.syncer.BrandLogo(ctx, logo)
}

// SetBrandLogoFromFile embeds the image at path as the logo. An empty path
// is a no-op; a file that cannot be read or is not an image is logged and
// otherwise ignored.
func (a *App) SetBrandLogoFromFile(ctx context.Context, path string) error {
	if err := a.guard(); err != nil {
		return err
	}
	uri, ok := a.readImage(ctx, path)
	if !ok {
		return nil
	}
	return a.SetBrandLogo(ctx, uri)
}

// SetCourseThumbnailFromFile embeds the image at path as the course
// thumbnail, with the same rules as SetBrandLogoFromFile.
func (a *App) SetCourseThumbnailFromFile(ctx context.Context, courseID, path string) error {
	return a.setCourseImage(ctx, courseID, path, func(c *models.Course, uri string) {
		c.Thumbnail = uri
	})
}

// SetAuthorAvatarFromFile embeds the image at path as the course author's
// avatar, creating the author record when the course has none.
func (a *App) SetAuthorAvatarFromFile(ctx context.Context, courseID, path string) error {
	return a.setCourseImage(ctx, courseID, path, func(c *models.Course, uri string) {
		if c.Author == nil {
			c.Author = &models.Author{}
		}
		c.Author.Avatar = uri
	})
}

func (a *App) setCourseImage(ctx context.Context, courseID, path string, apply func(*models.Course, string)) error {
	if err := a.guard(); err != nil {
		return err
	}
	c, err := a.catalog.Course(courseID)
	if err != nil {
		return err
	}
	uri, ok := a.readImage(ctx, path)
	if !ok {
		return nil
	}
	apply(&c, uri)
	return a.UpdateCourse(ctx, c)
}

func (a *App) readImage(ctx context.Context, path string) (string, bool) {
	if path == "" {
		return "", false
	}
	uri, err := media.DataURI(path)
	if err != nil {
		a.log.Warn(ctx, "image not loaded", "path", path, "error", err)
		return "", false
	}
	return uri, true
}

func (a *App) RemoteConfig() models.RemoteConfig {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.remote
}

// Connected reports whether a remote endpoint is configured. Nothing ever
// connects to it.
func (a *App) Connected() bool { return a.RemoteConfig().Connected() }

// SetRemoteConfig stores the cloud-sync endpoint shown in admin settings.
func (a *App) SetRemoteConfig(ctx context.Context, url, key string) error {
	if err := a.guard(); err != nil {
		return err
	}
	rc := models.RemoteConfig{URL: url, Key: key}
	if err := validate.Struct(rc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: remote url %q", common.ErrInvalidInput, url)
		}
		return err
	}
	a.mu.Lock()
	a.remote = rc
	a.mu.Unlock()
	return a.syncer.RemoteConfig(ctx, rc)
}
