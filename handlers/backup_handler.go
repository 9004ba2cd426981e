package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Dosada05/turf-kings/services"
)

type BackupHandler struct {
	backupService services.BackupService
}

func NewBackupHandler(bs services.BackupService) *BackupHandler {
	return &BackupHandler{backupService: bs}
}

// Export godoc
// @Summary Выгрузить турнир в JSON
// @Tags admin
// @Description Возвращает файл со снимком турнира. При настроенном R2 файл также загружается в бакет. clear=true сбрасывает турнир после выгрузки.
// @Produce json
// @Param clear query bool false "Сбросить турнир после выгрузки"
// @Success 200 {file} file "turfkings-5aside-YYYYMMDD-HHMM.json"
// @Failure 400 {object} map[string]string "Некорректный параметр clear"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 409 {object} map[string]string "Турнир изменился во время выгрузки, сброс отменён"
// @Security BearerAuth
// @Router /admin/backup [post]
func (h *BackupHandler) Export(w http.ResponseWriter, r *http.Request) {
	clear := false
	if raw := r.URL.Query().Get("clear"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid clear query parameter"))
			return
		}
		clear = parsed
	}

	result, err := h.backupService.Export(r.Context(), clear)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+result.FileName+`"`)
	if result.Location != "" {
		w.Header().Set("X-Backup-Location", result.Location)
	}
	w.Header().Set("X-Backup-Cleared", strconv.FormatBool(result.Cleared))
	w.WriteHeader(http.StatusOK)
	w.Write(result.Data)
}

// List godoc
// @Summary Список выгрузок в R2
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "backups"
// @Failure 503 {object} map[string]string "Хранилище не настроено"
// @Security BearerAuth
// @Router /admin/backups [get]
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	backups, err := h.backupService.List(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"backups": backups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
