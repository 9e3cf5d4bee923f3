package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-admin/internal/domain"
)

// ProductImagesDir subdirectorio (relativo a MEDIA_DIR) de las imágenes de producto.
const ProductImagesDir = "products_images"

var allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true}

// ImageStore guarda imágenes subidas en disco bajo el directorio de media.
type ImageStore struct {
	dir string
}

// NewImageStore construye el store sobre dir (MEDIA_DIR).
func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save copia el archivo a <dir>/products_images/<uuid><ext> y devuelve la ruta relativa
// que se persiste en el producto (servida bajo /media/).
func (s *ImageStore) Save(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExt[ext] {
		return "", domain.NewValidationError("image", "formato de imagen no soportado")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir imagen subida: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Join(s.dir, ProductImagesDir), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio de imágenes: %w", err)
	}
	rel := path.Join(ProductImagesDir, uuid.NewString()+ext)
	dst, err := os.Create(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("crear imagen: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return rel, nil
}

// Remove borra una imagen guardada con Save (ruta relativa). No existir no es error.
func (s *ImageStore) Remove(rel string) error {
	if rel == "" || !strings.HasPrefix(rel, ProductImagesDir+"/") || strings.Contains(rel, "..") {
		return fmt.Errorf("ruta de imagen inválida: %q", rel)
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("borrar imagen: %w", err)
	}
	return nil
}
