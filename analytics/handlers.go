package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"grillz/db"
	"grillz/globals"
	"grillz/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// Track accepts a fire-and-forget event from presentation code.
func Track(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload struct {
		Name       string            `json:"name"`
		Properties map[string]string `json:"properties"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid event payload")
		return
	}

	sessionID, _ := r.Context().Value(globals.SessionIDKey).(string)
	Emit(r.Context(), payload.Name, sessionID, payload.Properties)
	utils.RespondWithJSON(w, http.StatusAccepted, utils.M{"status": "tracked"})
}

// GetMetrics aggregates event counts by name over the stored events.
func GetMetrics(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$name", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	cursor, err := db.TrackEventsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to aggregate metrics")
		return
	}
	defer cursor.Close(ctx)

	metrics := map[string]int{}
	var rows []struct {
		Name  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to read metrics")
		return
	}
	for _, row := range rows {
		metrics[row.Name] = row.Count
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"metrics": metrics})
}
