package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-tailor/internal/types"
)

const pipelineResume = `Jane Doe
jane.doe@example.com
(555) 123-4567

Professional Experience
Value Mart	2021 - Present
Sales Associate
• Assisted customers with purchases and returns
• Operated cash register and handled transactions

Quick Stop	2019 - 2021
Cashier
• Rang up customer purchases accurately

Education
High School Diploma, Central High School, 2015
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJobFromText(t *testing.T) {
	job := jobFromText("\n\nRetail Cashier\nWe need a cashier.\nApply today.")
	assert.Equal(t, "Retail Cashier", job.Title)
	assert.Equal(t, "We need a cashier.\nApply today.", job.Description)
}

func TestJobFromText_Empty(t *testing.T) {
	job := jobFromText("   \n\n  ")
	assert.Empty(t, job.Title)
	assert.Empty(t, job.Description)
}

func TestJobFromText_TitleOnly(t *testing.T) {
	job := jobFromText("Warehouse Associate")
	assert.Equal(t, "Warehouse Associate", job.Title)
	assert.Empty(t, job.Description)
}

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		title string
		index int
		want  string
	}{
		{"Retail Cashier", 0, "tailored_resume_retail_cashier.txt"},
		{"Front-End / Checkout", 0, "tailored_resume_front_end___checkout.txt"},
		{"", 0, "tailored_resume_1.txt"},
		{"???", 2, "tailored_resume_3.txt"},
	}
	for _, tt := range tests {
		got := outputFileName(types.JobPosting{Title: tt.title}, tt.index)
		assert.Equal(t, tt.want, got, "title %q", tt.title)
	}
}

func TestLoadJobFile_PlainText(t *testing.T) {
	path := writeTempFile(t, "job.txt", "Retail Cashier\r\n\r\nHandle transactions.\n")
	job, err := loadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Retail Cashier", job.Title)
	assert.Equal(t, "Handle transactions.", job.Description)
}

func TestLoadJobFile_JSON(t *testing.T) {
	path := writeTempFile(t, "job.json", `{
		"title": "Retail Cashier",
		"company": "Value Mart",
		"description": "Handle transactions."
	}`)
	job, err := loadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Retail Cashier", job.Title)
	assert.Equal(t, "Value Mart", job.Company)
}

func TestLoadJobFile_Missing(t *testing.T) {
	_, err := loadJobFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestRunPipeline_Validation(t *testing.T) {
	_, err := RunPipeline(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume path is required")

	_, err = RunPipeline(context.Background(), RunOptions{ResumePath: "resume.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one job")
}

func TestRunPipeline_EndToEnd(t *testing.T) {
	resumePath := writeTempFile(t, "resume.txt", pipelineResume)
	jobPath := writeTempFile(t, "job.txt", "Retail Cashier\nOperate the register and help customers.")
	outDir := filepath.Join(t.TempDir(), "out")

	var events []ProgressEvent
	results, err := RunPipeline(context.Background(), RunOptions{
		ResumePath: resumePath,
		JobPaths:   []string{jobPath},
		OutputDir:  outDir,
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, "Retail Cashier", r.Job.Title)
	require.NotNil(t, r.Report)
	assert.False(t, r.Report.Fallback)

	content, err := os.ReadFile(r.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, string(content), "Jane Doe")

	steps := make(map[string]bool)
	for _, e := range events {
		steps[e.Step] = true
	}
	for _, step := range []string{StepIngest, StepParse, StepJobs, StepTailor, StepRender} {
		assert.True(t, steps[step], "missing progress step %s", step)
	}
}

func TestRunPipeline_MultipleJobs(t *testing.T) {
	resumePath := writeTempFile(t, "resume.txt", pipelineResume)
	jobA := writeTempFile(t, "a.txt", "Retail Cashier\nRegister work.")
	jobB := writeTempFile(t, "b.txt", "Warehouse Associate\nStocking and picking.")
	outDir := filepath.Join(t.TempDir(), "out")

	results, err := RunPipeline(context.Background(), RunOptions{
		ResumePath: resumePath,
		JobPaths:   []string{jobA, jobB},
		OutputDir:  outDir,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Results stay in input order regardless of goroutine scheduling.
	assert.Equal(t, "Retail Cashier", results[0].Job.Title)
	assert.Equal(t, "Warehouse Associate", results[1].Job.Title)
	assert.NotEqual(t, results[0].OutputPath, results[1].OutputPath)
}
