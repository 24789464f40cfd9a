package storage

// documentSchema describes the persisted task document. Load validates every
// document against it before decoding, so malformed timestamps, unknown enum
// values, and missing fields surface as task.ErrCorruptDocument instead of
// partially-decoded state.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["ordering_strategy", "created_at", "modified_at", "lists", "metadata"],
  "properties": {
    "ordering_strategy": {
      "enum": ["manual", "alphabetical", "creation_order", "recently_modified", "recently_added_task"]
    },
    "created_at": {"type": "string", "format": "date-time"},
    "modified_at": {"type": "string", "format": "date-time"},
    "lists": {
      "type": "array",
      "items": {"$ref": "#/$defs/list"}
    },
    "metadata": {
      "type": "object",
      "additionalProperties": {"$ref": "#/$defs/meta"}
    }
  },
  "$defs": {
    "list": {
      "type": "object",
      "required": ["id", "name", "description", "created_at", "modified_at", "tasks"],
      "properties": {
        "id": {"type": "integer"},
        "name": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "created_at": {"type": "string", "format": "date-time"},
        "modified_at": {"type": "string", "format": "date-time"},
        "tasks": {
          "type": ["array", "null"],
          "items": {"$ref": "#/$defs/task"}
        }
      }
    },
    "task": {
      "type": "object",
      "required": ["id", "title", "description", "status", "priority", "due_date", "tags", "created_at", "modified_at"],
      "properties": {
        "id": {"type": "integer"},
        "title": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "status": {"enum": ["todo", "in_progress", "completed"]},
        "priority": {"enum": ["low", "medium", "high"]},
        "due_date": {"type": ["string", "null"], "format": "date-time"},
        "tags": {
          "type": ["array", "null"],
          "items": {"type": "string"}
        },
        "created_at": {"type": "string", "format": "date-time"},
        "modified_at": {"type": "string", "format": "date-time"}
      }
    },
    "meta": {
      "type": "object",
      "required": ["custom_index", "created_at"],
      "properties": {
        "custom_index": {"type": "integer"},
        "created_at": {"type": "string", "format": "date-time"}
      }
    }
  }
}`
