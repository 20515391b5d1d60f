package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"storefront-service/internal/admin"
	"storefront-service/internal/model"
	"storefront-service/internal/store"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Admin writes carry the revision the client loaded in X-Revision. A stale
// revision means another admin wrote in between, and the write is rejected
// with 409 rather than silently overwritten. Every operation persists the
// entire document; rapid consecutive edits each trigger a full write.

// AddAdminItem creates a default record in the named collection
func AddAdminItem(c echo.Context) error {
	log := logger.FromContext(c)
	collection := c.Param("collection")

	col, ok := admin.Collections()[collection]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}
	if col.Add == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "collection does not support creation"})
	}

	st, rev := appStore.Load(c.Request().Context())
	id, err := col.Add(st)
	if err != nil {
		log.Warn("Failed to create item",
			zap.String("collection", collection),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	newRev, err := saveDocument(c, st, rev)
	if err != nil {
		return conflictOrGatewayError(c, err)
	}

	prometheus.RecordAdminOperation(collection, "add")
	log.Info("Item created",
		zap.String("collection", collection),
		zap.String("item_id", id))
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "revision": newRev})
}

// UpdateAdminItem shallow-merges the request body onto the matching record
func UpdateAdminItem(c echo.Context) error {
	log := logger.FromContext(c)
	collection := c.Param("collection")
	id := c.Param("id")

	col, ok := admin.Collections()[collection]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}

	partial, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	st, rev := appStore.Load(c.Request().Context())
	if err := col.Update(st, id, partial); err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		log.Error("Failed to update item",
			zap.String("collection", collection),
			zap.String("item_id", id),
			zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	newRev, err := saveDocument(c, st, rev)
	if err != nil {
		return conflictOrGatewayError(c, err)
	}

	prometheus.RecordAdminOperation(collection, "update")
	log.Info("Item updated",
		zap.String("collection", collection),
		zap.String("item_id", id))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "revision": newRev})
}

// DeleteAdminItem removes the matching record from the named collection
func DeleteAdminItem(c echo.Context) error {
	log := logger.FromContext(c)
	collection := c.Param("collection")
	id := c.Param("id")

	col, ok := admin.Collections()[collection]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown collection"})
	}

	st, rev := appStore.Load(c.Request().Context())
	if err := col.Delete(st, id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
	}

	newRev, err := saveDocument(c, st, rev)
	if err != nil {
		return conflictOrGatewayError(c, err)
	}

	prometheus.RecordAdminOperation(collection, "delete")
	log.Info("Item deleted",
		zap.String("collection", collection),
		zap.String("item_id", id))
	return c.JSON(http.StatusOK, echo.Map{"id": id, "revision": newRev})
}

// ListOrders returns the submitted orders, newest first (checkout prepends)
func ListOrders(c echo.Context) error {
	st, rev := appStore.Load(c.Request().Context())
	c.Response().Header().Set("X-Revision", strconv.FormatInt(rev, 10))
	return c.JSON(http.StatusOK, st.Orders)
}

// saveDocument persists the whole document. When the client sent X-Revision
// the write is compare-and-swap against it; otherwise the revision loaded at
// the start of the request is used, so a concurrent admin write still
// surfaces as a conflict instead of being silently clobbered.
func saveDocument(c echo.Context, st *model.AppState, loaded int64) (int64, error) {
	defer prometheus.TrackDocumentSave()(time.Now())

	expected := loaded
	if header := c.Request().Header.Get("X-Revision"); header != "" {
		if v, err := strconv.ParseInt(header, 10, 64); err == nil {
			expected = v
		}
	}

	rev, err := appStore.CompareAndSave(c.Request().Context(), st, expected)
	if err != nil {
		if errors.Is(err, store.ErrRevisionConflict) {
			prometheus.RevisionConflictTotal.Inc()
			prometheus.DocumentSavesCounter.WithLabelValues("conflict").Inc()
		} else {
			prometheus.DocumentSavesCounter.WithLabelValues("error").Inc()
		}
		return 0, err
	}

	prometheus.DocumentSavesCounter.WithLabelValues("ok").Inc()
	return rev, nil
}

func conflictOrGatewayError(c echo.Context, err error) error {
	log := logger.FromContext(c)
	if errors.Is(err, store.ErrRevisionConflict) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "document changed since it was loaded, reload and retry"})
	}
	log.Error("Failed to save state document", zap.Error(err))
	return c.JSON(http.StatusBadGateway, echo.Map{"error": "changes not saved, please retry"})
}
