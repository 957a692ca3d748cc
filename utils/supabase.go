package utils

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	storage "github.com/supabase-community/storage-go"
)

const bucketMedia = "media"

// MediaStorage sube y elimina los adjuntos de las opciones en Supabase
// Storage. Se construye una vez en el arranque con las credenciales de la
// configuración y se inyecta en el controlador.
type MediaStorage struct {
	storeURL string
	key      string
}

func NewMediaStorage(storeURL, key string) *MediaStorage {
	return &MediaStorage{storeURL: strings.TrimRight(storeURL, "/"), key: key}
}

func (m *MediaStorage) configurado() error {
	if m.storeURL == "" || m.key == "" {
		return fmt.Errorf("storage sin configurar: faltan URL y/o clave")
	}
	return nil
}

// SubirMediaOpcion sube la imagen adjunta de una opción al bucket de Storage.
// Ruta: media/opciones/<fileID>.<ext>. Devuelve la URL pública del objeto.
func (m *MediaStorage) SubirMediaOpcion(fileHeader *multipart.FileHeader, fileID string) (string, error) {
	if err := m.configurado(); err != nil {
		return "", err
	}

	storageClient := storage.NewClient(m.storeURL+"/storage/v1", m.key, nil)

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	ext := filepath.Ext(fileHeader.Filename)
	objectPath := fmt.Sprintf("opciones/%s%s", fileID, ext)

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return "", err
	}

	contentType := fileHeader.Header.Get("Content-Type")
	options := storage.FileOptions{
		ContentType: &contentType,
	}

	if _, err := storageClient.UploadFile(bucketMedia, objectPath, &buf, options); err != nil {
		return "", err
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", m.storeURL, bucketMedia, objectPath)
	return publicURL, nil
}

// EliminarMedia recibe la URL pública de un objeto de Storage y lo elimina.
// Si la URL está vacía no hace nada.
func (m *MediaStorage) EliminarMedia(publicURL string) error {
	if publicURL == "" {
		return nil
	}
	if err := m.configurado(); err != nil {
		return err
	}

	idx := strings.Index(publicURL, "/storage/v1/object/")
	if idx == -1 {
		return fmt.Errorf("no se pudo determinar el objeto en la URL: %s", publicURL)
	}

	rest := publicURL[idx+len("/storage/v1/object/"):]
	rest = strings.TrimPrefix(rest, "public/")

	// rest => "<bucket>/<ruta/del/objeto...>"
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) < 2 {
		return fmt.Errorf("no se pudo extraer bucket/objeto de la URL: %s", publicURL)
	}
	bucket := parts[0]
	object := parts[1]
	if qIdx := strings.Index(object, "?"); qIdx != -1 {
		object = object[:qIdx]
	}
	if u, err := url.PathUnescape(object); err == nil {
		object = u
	}

	deleteURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", m.storeURL, bucket, object)

	req, err := http.NewRequest("DELETE", deleteURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.key)
	req.Header.Set("apikey", m.key)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("fallo al eliminar el objeto: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
