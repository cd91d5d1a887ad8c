package media

import (
	"context"
	"io"
)

// Folders bajo el namespace del store.
const (
	FolderFiles   = "files"   // adjuntos (estudios, PDFs)
	FolderPets    = "pets"    // fotos de perfil/banner
)

// UploadInput describe un archivo ya staged listo para subir.
type UploadInput struct {
	// Folder es la categoría dentro del namespace (files, pets).
	Folder      string
	Filename    string
	ContentType string
	Body        io.Reader
}

// Object es el resultado de un upload exitoso.
type Object struct {
	// URL es el locator estable que se persiste en DB.
	URL string
	// Format es el tag de formato derivado de la extensión (jpg, pdf, ...).
	Format string
}

// Store abstrae el object store remoto.
// Delete recibe el locator tal como quedó en DB y deriva la key internamente;
// locators con forma desconocida y objetos ya borrados se toleran en silencio.
type Store interface {
	Upload(ctx context.Context, in UploadInput) (Object, error)
	Delete(ctx context.Context, locator string) error
}
