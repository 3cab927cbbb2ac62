package server

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"

	"bptree/store"
)

// Client speaks the node-store protocol against a remote server and satisfies
// store.Store, so a tree layer can swap a local backend for a remote one
// without noticing.
type Client struct {
	baseURL string
}

var _ store.Store = (*Client)(nil)

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/")}
}

// send fires the agent and folds transport errors into one.
func send(agent *fiber.Agent) (int, []byte, error) {
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, errors.Wrap(errs[0], "node store request")
	}
	return code, body, nil
}

func (c *Client) RootID() (int64, error) {
	code, body, err := send(fiber.Get(c.baseURL + "/root"))
	if err != nil {
		return 0, err
	}
	if code == fiber.StatusNotFound {
		return 0, store.ErrRootNotSet
	}
	if code != fiber.StatusOK {
		return 0, errors.Newf("get root: unexpected status %d", code)
	}
	var resp rootBody
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, errors.Wrap(err, "decode root response")
	}
	return resp.RootID, nil
}

func (c *Client) SetRootID(id int64) error {
	agent := fiber.Put(c.baseURL + "/root")
	agent.JSON(rootBody{RootID: id})
	code, _, err := send(agent)
	if err != nil {
		return err
	}
	if code != fiber.StatusNoContent {
		return errors.Newf("set root: unexpected status %d", code)
	}
	return nil
}

func (c *Client) CreateNode(payload []byte) (int64, error) {
	agent := fiber.Post(c.baseURL + "/nodes")
	agent.JSON(nodeBody{Payload: payload})
	code, body, err := send(agent)
	if err != nil {
		return 0, err
	}
	if code != fiber.StatusCreated {
		return 0, errors.Newf("create node: unexpected status %d", code)
	}
	var resp nodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, errors.Wrap(err, "decode create response")
	}
	return resp.ID, nil
}

func (c *Client) GetNode(id int64) ([]byte, error) {
	code, body, err := send(fiber.Get(c.nodeURL(id)))
	if err != nil {
		return nil, err
	}
	if code == fiber.StatusNotFound {
		return nil, errors.Wrapf(store.ErrNodeNotFound, "node %d", id)
	}
	if code != fiber.StatusOK {
		return nil, errors.Newf("get node %d: unexpected status %d", id, code)
	}
	var resp nodeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(err, "decode node response")
	}
	return resp.Payload, nil
}

func (c *Client) UpdateNode(id int64, payload []byte) error {
	agent := fiber.Put(c.nodeURL(id))
	agent.JSON(nodeBody{Payload: payload})
	code, _, err := send(agent)
	if err != nil {
		return err
	}
	if code == fiber.StatusNotFound {
		return errors.Wrapf(store.ErrNodeNotFound, "node %d", id)
	}
	if code != fiber.StatusNoContent {
		return errors.Newf("update node %d: unexpected status %d", id, code)
	}
	return nil
}

func (c *Client) DeleteNode(id int64) error {
	code, _, err := send(fiber.Delete(c.nodeURL(id)))
	if err != nil {
		return err
	}
	if code == fiber.StatusNotFound {
		return errors.Wrapf(store.ErrNodeNotFound, "node %d", id)
	}
	if code != fiber.StatusNoContent {
		return errors.Newf("delete node %d: unexpected status %d", id, code)
	}
	return nil
}

// Close is a no-op; the client holds no connection state of its own.
func (c *Client) Close() error {
	return nil
}

func (c *Client) nodeURL(id int64) string {
	return c.baseURL + "/nodes/" + strconv.FormatInt(id, 10)
}
