package images

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"grillz/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
)

// ResolveImage returns the display image URL for a menu item.
func ResolveImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"url": Resolve(ps.ByName("itemid")),
	})
}

// UploadMenuPic stores a menu photo and generates its thumbnail. Used by
// ops tooling to refresh item photography.
func UploadMenuPic(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	file, handler, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Photo file missing")
		return
	}
	defer file.Close()

	ext := filepath.Ext(handler.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		utils.RespondWithError(w, http.StatusBadRequest, "Unsupported file type")
		return
	}

	id := uuid.New().String()
	filename := fmt.Sprintf("%s%s", id, ext)
	path := filepath.Join(menuPicDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Unable to save file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error saving file")
		return
	}

	if _, err := CreateThumb(id, ext, 300); err != nil {
		// thumbnail failure is non-fatal; the original was saved
		utils.RespondWithJSON(w, http.StatusOK, utils.M{"url": "/static/menupic/" + filename, "thumb": ""})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"url":   "/static/menupic/" + filename,
		"thumb": "/static/menupic/thumb/" + id + ".jpg",
	})
}
