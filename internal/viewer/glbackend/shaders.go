package glbackend

const vertexShaderSrc = `#version 410 core

layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec2 aUV;

uniform mat4 uMVP;

out vec2 vUV;

void main() {
	vUV = aUV;
	gl_Position = uMVP * vec4(aPosition, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core

in vec2 vUV;

uniform sampler2D uTexture;

out vec4 fragColor;

void main() {
	fragColor = texture(uTexture, vUV);
}
`
