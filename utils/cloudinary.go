package utils

import (
	"context"
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/joho/godotenv"
)

// InitCloudinary initializes the Cloudinary client
func InitCloudinary() (*cloudinary.Cloudinary, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"))
}

// UploadToCloudinary uploads a profile picture and returns the secure URL
func UploadToCloudinary(file interface{}, publicID string, folder string) (string, error) {
	cld, err := InitCloudinary()
	if err != nil {
		return "", err
	}

	resp, err := cld.Upload.Upload(context.Background(), file, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         folder,
		UploadPreset:   os.Getenv("CLOUDINARY_UPLOAD_PRESET"),
		Transformation: "c_thumb,w_200,h_200",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
