// Package server exposes the node-store contract over HTTP so a remote
// process can back a tree with it. The wire surface mirrors store.Store
// one-to-one; Client on the other side turns it back into a store.Store.
package server

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"bptree/store"
)

type rootBody struct {
	RootID int64 `json:"root_id"`
}

type nodeBody struct {
	Payload []byte `json:"payload"`
}

type nodeResponse struct {
	ID      int64  `json:"id"`
	Payload []byte `json:"payload,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// New builds the fiber app serving st. The caller owns listening and
// shutdown.
func New(st store.Store, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(func(c *fiber.Ctx) error {
		reqID := uuid.NewString()
		c.Set("X-Request-Id", reqID)
		start := time.Now()
		err := c.Next()
		log.WithFields(logrus.Fields{
			"request_id": reqID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration":   time.Since(start),
		}).Info("request")
		return err
	})

	app.Get("/root", func(c *fiber.Ctx) error {
		id, err := st.RootID()
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(rootBody{RootID: id})
	})

	app.Put("/root", func(c *fiber.Ctx) error {
		var body rootBody
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid JSON"})
		}
		if err := st.SetRootID(body.RootID); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Post("/nodes", func(c *fiber.Ctx) error {
		var body nodeBody
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid JSON"})
		}
		id, err := st.CreateNode(body.Payload)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(nodeResponse{ID: id})
	})

	app.Get("/nodes/:id", func(c *fiber.Ctx) error {
		id, err := nodeID(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid node id"})
		}
		payload, err := st.GetNode(id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(nodeResponse{ID: id, Payload: payload})
	})

	app.Put("/nodes/:id", func(c *fiber.Ctx) error {
		id, err := nodeID(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid node id"})
		}
		var body nodeBody
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid JSON"})
		}
		if err := st.UpdateNode(id, body.Payload); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	app.Delete("/nodes/:id", func(c *fiber.Ctx) error {
		id, err := nodeID(c)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errorBody{Error: "invalid node id"})
		}
		if err := st.DeleteNode(id); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	return app
}

func nodeID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNodeNotFound), errors.Is(err, store.ErrRootNotSet):
		status = fiber.StatusNotFound
	case errors.Is(err, store.ErrStoreClosed):
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(errorBody{Error: err.Error()})
}
