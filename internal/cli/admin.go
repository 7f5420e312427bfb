package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/arunika/internal/common"
	"github.com/dmitrijs2005/arunika/internal/models"
)

func (a *App) Admin(ctx context.Context) error {
	if err := a.lms.OpenAdmin(ctx); err != nil {
		return err
	}
	return a.showAdmin()
}

// requireAdmin fails before any prompt is shown. The app checks again at
// the mutation itself.
func (a *App) requireAdmin() error {
	if !a.lms.CanMutate() {
		return common.ErrReadOnly
	}
	return nil
}

func (a *App) AddCourse(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	c, err := a.promptCourse(models.Course{})
	if err != nil {
		return err
	}
	c, err = a.lms.AddCourse(ctx, c)
	if err != nil {
		return err
	}
	a.println(doneStyle.Render("Course added: " + c.ID))
	return nil
}

func (a *App) EditCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("editcourse <courseId>")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	cur, err := a.lms.Course(args[0])
	if err != nil {
		return err
	}
	c, err := a.promptCourse(cur)
	if err != nil {
		return err
	}
	if err := a.lms.UpdateCourse(ctx, c); err != nil {
		return err
	}
	a.println(doneStyle.Render("Course updated"))
	return nil
}

func (a *App) DeleteCourse(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delcourse <courseId>")
	}
	if err := a.lms.DeleteCourse(ctx, args[0]); err != nil {
		return err
	}
	a.println("Course deleted")
	return nil
}

// promptCourse asks for the editable course fields, keeping cur's value on
// an empty answer.
func (a *App) promptCourse(cur models.Course) (models.Course, error) {
	c := cur.Clone()
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &c.Title},
		{"Category", &c.Category},
		{"Description", &c.Description},
		{"Thumbnail URL", &c.Thumbnail},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, promptWith(f.prompt, *f.dst), a.out)
		if err != nil {
			return models.Course{}, err
		}
		*f.dst = orDefault(v, *f.dst)
	}

	author := models.Author{}
	if c.Author != nil {
		author = *c.Author
	}
	name, err := getSimpleText(a.reader, promptWith("Author name", author.Name), a.out)
	if err != nil {
		return models.Course{}, err
	}
	role, err := getSimpleText(a.reader, promptWith("Author role", author.Role), a.out)
	if err != nil {
		return models.Course{}, err
	}
	author.Name, author.Role = orDefault(name, author.Name), orDefault(role, author.Role)
	if author.Name != "" {
		c.Author = &author
	}
	return c, nil
}

func (a *App) AddLesson(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("addlesson <courseId>")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	if _, err := a.lms.Course(args[0]); err != nil {
		return err
	}
	l, err := a.promptLesson(models.Lesson{})
	if err != nil {
		return err
	}
	l, err = a.lms.AddLesson(ctx, args[0], l)
	if err != nil {
		return err
	}
	a.println(doneStyle.Render("Lesson added: " + l.ID))
	return nil
}

func (a *App) EditLesson(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("editlesson <courseId> <lessonId>")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	cur, err := a.lms.Lesson(args[0], args[1])
	if err != nil {
		return err
	}
	l, err := a.promptLesson(cur)
	if err != nil {
		return err
	}
	if err := a.lms.UpdateLesson(ctx, args[0], l); err != nil {
		return err
	}
	a.println(doneStyle.Render("Lesson updated"))
	return nil
}

func (a *App) DeleteLesson(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("dellesson <courseId> <lessonId>")
	}
	if err := a.lms.DeleteLesson(ctx, args[0], args[1]); err != nil {
		return err
	}
	a.println("Lesson deleted")
	return nil
}

func (a *App) promptLesson(cur models.Lesson) (models.Lesson, error) {
	l := cur
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Title", &l.Title},
		{"Description", &l.Description},
		{"Video URL", &l.VideoURL},
		{"Duration (mm:ss)", &l.Duration},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, promptWith(f.prompt, *f.dst), a.out)
		if err != nil {
			return models.Lesson{}, err
		}
		*f.dst = orDefault(v, *f.dst)
	}
	content, err := getMultiline(a.reader, "Content", a.out)
	if err != nil {
		return models.Lesson{}, err
	}
	l.Content = orDefault(content, l.Content)
	return l, nil
}

func (a *App) AddAsset(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("addasset <courseId> <lessonId>")
	}
	if err := a.requireAdmin(); err != nil {
		return err
	}
	if _, err := a.lms.Lesson(args[0], args[1]); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", a.out)
	if err != nil {
		return err
	}
	kind, err := getSimpleText(a.reader, "Type (file, spreadsheet, link)", a.out)
	if err != nil {
		return err
	}
	as, err := a.lms.AddAsset(ctx, args[0], args[1], models.Asset{Name: name, URL: url, Type: models.AssetType(kind)})
	if err != nil {
		return err
	}
	a.println(doneStyle.Render("Asset added: " + as.ID))
	return nil
}

func (a *App) DeleteAsset(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage("delasset <courseId> <lessonId> <assetId>")
	}
	if err := a.lms.DeleteAsset(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}
	a.println("Asset deleted")
	return nil
}

func (a *App) Publish(ctx context.Context, args []string) error {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		return usage("publish <courseId> on|off")
	}
	if err := a.lms.SetVisibility(ctx, args[0], args[1] == "on"); err != nil {
		return err
	}
	a.println("Visibility of " + args[0] + " set to " + args[1])
	return nil
}

func (a *App) Thumbnail(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("thumb <courseId> <file>")
	}
	return a.lms.SetCourseThumbnailFromFile(ctx, args[0], args[1])
}

func (a *App) Avatar(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("avatar <courseId> <file>")
	}
	return a.lms.SetAuthorAvatarFromFile(ctx, args[0], args[1])
}

func (a *App) Brand(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, promptWith("Brand name", a.lms.Brand().Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		return nil
	}
	if err := a.lms.SetBrandName(ctx, name); err != nil {
		return err
	}
	a.println(renderHeader(a.lms.Brand(), ""))
	return nil
}

// Logo sets the brand logo from an image file, or from a URL when the
// argument looks like one.
func (a *App) Logo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("logo <file|url>")
	}
	if isURL(args[0]) {
		return a.lms.SetBrandLogo(ctx, args[0])
	}
	return a.lms.SetBrandLogoFromFile(ctx, args[0])
}

func (a *App) Remote(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	cur := a.lms.RemoteConfig()
	url, err := getSimpleText(a.reader, promptWith("Sync URL", cur.URL), a.out)
	if err != nil {
		return err
	}
	key, err := getSimpleText(a.reader, "Sync key (empty keeps the current key)", a.out)
	if err != nil {
		return err
	}
	if err := a.lms.SetRemoteConfig(ctx, orDefault(url, cur.URL), orDefault(key, cur.Key)); err != nil {
		return err
	}
	if a.lms.Connected() {
		a.println(doneStyle.Render("Connected"))
	} else {
		a.println(mutedStyle.Render("Not connected"))
	}
	return nil
}

func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("report <file.xlsx>")
	}
	if err := a.lms.ExportReport(args[0]); err != nil {
		return err
	}
	a.println("Report written to " + args[0])
	return nil
}

func promptWith(label, cur string) string {
	if cur == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, cur)
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "data:")
}
