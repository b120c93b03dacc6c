package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Name     string
	Email    string    `gorm:"unique"`
	Posts    []Post    `gorm:"foreignkey:AuthorID"`
	Comments []Comment `gorm:"foreignkey:AuthorID"`
}

type Post struct {
	gorm.Model
	Title    string
	Text     string
	Image    string
	AuthorID uint
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text     string
	AuthorID uint
	PostID   uint
}
