package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrEmptyFilename имя файла пустое или сводится к пустому после очистки
	ErrEmptyFilename = errors.New("empty filename")

	// ErrFileType расширение файла не входит в список разрешённых
	ErrFileType = errors.New("file type is not allowed")

	// ErrFileNotFound файла нет в каталоге обмена
	ErrFileNotFound = errors.New("file not found")
)

// FileService отвечает за каталог обмена: сохранение, выдачу и список файлов.
// Идентичность файла — его имя внутри каталога, записей в БД у файлов нет.
type FileService struct {
	dir     string
	allowed map[string]struct{}
}

// NewFileService создаёт сервис над каталогом dir.
// allowedExts — расширения с точкой или без, регистр не важен.
func NewFileService(dir string, allowedExts []string) *FileService {
	allowed := make(map[string]struct{}, len(allowedExts))
	for _, e := range allowedExts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		allowed[e] = struct{}{}
	}
	return &FileService{dir: dir, allowed: allowed}
}

// cleanName отбрасывает любые элементы пути, оставляя только имя файла.
// Клиентское имя идёт в ФС как есть, поэтому ../ и абсолютные пути режем здесь.
func cleanName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == ".." || name == "/" || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func (s *FileService) extAllowed(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return false
	}
	_, ok := s.allowed[ext]
	return ok
}

// Store записывает содержимое файла в каталог обмена.
// Одноимённый файл молча перезаписывается — при одновременных загрузках
// одного имени побеждает последняя запись, координации нет.
func (s *FileService) Store(name string, content []byte) error {
	name = cleanName(name)
	if name == "" {
		return ErrEmptyFilename
	}
	if !s.extAllowed(name) {
		return ErrFileType
	}
	return os.WriteFile(filepath.Join(s.dir, name), content, 0o644)
}

// Retrieve возвращает содержимое файла целиком.
func (s *FileService) Retrieve(name string) ([]byte, error) {
	name = cleanName(name)
	if name == "" {
		return nil, ErrEmptyFilename
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return data, nil
}

// List возвращает имена обычных файлов каталога.
// os.ReadDir отдаёт записи отсортированными по имени, порядок стабилен.
func (s *FileService) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
