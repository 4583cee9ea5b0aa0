package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Subplan API",
        "description": "Weekly timetable and substitution planning service",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Directory", "description": "Subjects, teachers and classes"},
        {"name": "Timetable", "description": "Weekly grid and conflict checks"},
        {"name": "Absences", "description": "Absence marks and affected lessons"},
        {"name": "Substitutions", "description": "Candidate ranking and coverage records"},
        {"name": "Export", "description": "Printable day reports"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/teachers": {
            "get": {
                "tags": ["Directory"],
                "summary": "List teachers",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Directory"],
                "summary": "Create teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/teachers/{id}/absences/toggle": {
            "post": {
                "tags": ["Absences"],
                "summary": "Toggle an absence mark",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ToggleAbsenceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/absences/affected": {
            "get": {
                "tags": ["Absences"],
                "summary": "List lessons affected by absences on a date",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "teacherId", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedule/cell": {
            "put": {
                "tags": ["Timetable"],
                "summary": "Upsert a grid cell",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SetLessonRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Teacher already busy at this slot"}
                }
            }
        },
        "/api/v1/substitutions/candidates": {
            "get": {
                "tags": ["Substitutions"],
                "summary": "Rank replacement candidates for a slot",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "day", "in": "query", "required": true, "type": "string"},
                    {"name": "shift", "in": "query", "required": true, "type": "string"},
                    {"name": "period", "in": "query", "required": true, "type": "integer"},
                    {"name": "subjectId", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/substitutions": {
            "get": {
                "tags": ["Substitutions"],
                "summary": "List substitutions for a date",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Substitutions"],
                "summary": "Assign a replacement teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Replacement teacher absent or busy"}
                }
            }
        },
        "/api/v1/export/day-report": {
            "get": {
                "tags": ["Export"],
                "summary": "Download the day's substitution report",
                "parameters": [
                    {"name": "date", "in": "query", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Report file"}
                }
            }
        }
    },
    "definitions": {
        "Teacher": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "subject_ids": {"type": "array", "items": {"type": "string"}},
                "unavailable_dates": {"type": "array", "items": {"type": "string"}},
                "contact_info": {"type": "string"}
            }
        },
        "TeacherRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "subject_ids": {"type": "array", "items": {"type": "string"}},
                "contact_info": {"type": "string"}
            },
            "required": ["name"]
        },
        "ToggleAbsenceRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"}
            },
            "required": ["date"]
        },
        "SetLessonRequest": {
            "type": "object",
            "properties": {
                "class_id": {"type": "string"},
                "day": {"type": "string"},
                "shift": {"type": "string"},
                "period": {"type": "integer"},
                "subject_id": {"type": "string"},
                "teacher_id": {"type": "string"},
                "room_id": {"type": "string"},
                "force": {"type": "boolean"}
            },
            "required": ["class_id", "day", "shift", "period", "subject_id", "teacher_id"]
        },
        "AssignRequest": {
            "type": "object",
            "properties": {
                "lesson_id": {"type": "string"},
                "date": {"type": "string"},
                "replacement_teacher_id": {"type": "string"},
                "note": {"type": "string"},
                "force": {"type": "boolean"}
            },
            "required": ["lesson_id", "date", "replacement_teacher_id"]
        },
        "Candidate": {
            "type": "object",
            "properties": {
                "teacher": {"$ref": "#/definitions/Teacher"},
                "is_absent": {"type": "boolean"},
                "is_busy": {"type": "boolean"},
                "is_specialist": {"type": "boolean"},
                "can_teach": {"type": "boolean"},
                "score": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"type": "object"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
