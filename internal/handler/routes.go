package handler

import "github.com/gin-gonic/gin"

// Handlers groups everything the router needs.
type Handlers struct {
	Directory    *DirectoryHandler
	Timetable    *TimetableHandler
	Absence      *AbsenceHandler
	Substitution *SubstitutionHandler
	Export       *ExportHandler
	Metrics      *MetricsHandler
}

// RegisterRoutes wires all endpoints under the API prefix.
func RegisterRoutes(r *gin.Engine, prefix string, h Handlers) {
	r.GET("/metrics", h.Metrics.Prometheus)

	api := r.Group(prefix)

	api.GET("/subjects", h.Directory.ListSubjects)
	api.POST("/subjects", h.Directory.CreateSubject)
	api.PUT("/subjects/:id", h.Directory.UpdateSubject)
	api.DELETE("/subjects/:id", h.Directory.DeleteSubject)

	api.GET("/teachers", h.Directory.ListTeachers)
	api.POST("/teachers", h.Directory.CreateTeacher)
	api.PUT("/teachers/:id", h.Directory.UpdateTeacher)
	api.DELETE("/teachers/:id", h.Directory.DeleteTeacher)
	api.GET("/teachers/:id/lessons", h.Timetable.TeacherLessons)
	api.POST("/teachers/:id/absences/toggle", h.Absence.Toggle)

	api.GET("/classes", h.Directory.ListClasses)
	api.POST("/classes", h.Directory.CreateClass)
	api.PUT("/classes/:id", h.Directory.UpdateClass)
	api.DELETE("/classes/:id", h.Directory.DeleteClass)

	api.GET("/schedule", h.Timetable.Grid)
	api.PUT("/schedule/cell", h.Timetable.SetCell)
	api.GET("/schedule/conflicts", h.Timetable.Conflicts)
	api.DELETE("/schedule/:id", h.Timetable.Delete)

	api.GET("/absences", h.Absence.Absent)
	api.GET("/absences/affected", h.Absence.Affected)

	api.GET("/substitutions", h.Substitution.List)
	api.POST("/substitutions", h.Substitution.Assign)
	api.GET("/substitutions/candidates", h.Substitution.Candidates)
	api.DELETE("/substitutions/:id", h.Substitution.Unassign)

	api.GET("/export/day-report", h.Export.DayReport)
}
