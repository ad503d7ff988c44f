package services

import (
	"fmt"
	"sync"
)

// MockS3Service is a mock implementation of S3Interface for testing
type MockS3Service struct {
	uploadedFiles map[string][]byte // map of S3 key to content
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadBytes simulates uploading content to S3
func (m *MockS3Service) UploadBytes(s3Key string, content []byte, contentType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadedFiles[s3Key] = content
	return nil
}

// GetPresignedURL returns a fake URL for a stored key
func (m *MockS3Service) GetPresignedURL(s3Key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, exists := m.uploadedFiles[s3Key]; !exists {
		return "", fmt.Errorf("mock S3: key %s not found", s3Key)
	}
	return fmt.Sprintf("https://mock-s3.example.com/%s", s3Key), nil
}

// DeleteFile removes a key from the mock storage
func (m *MockS3Service) DeleteFile(s3Key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.uploadedFiles, s3Key)
	return nil
}

// GetUploadedFile returns stored content for assertions in tests
func (m *MockS3Service) GetUploadedFile(s3Key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, exists := m.uploadedFiles[s3Key]
	return content, exists
}

// UploadCount returns the number of stored objects
func (m *MockS3Service) UploadCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.uploadedFiles)
}
